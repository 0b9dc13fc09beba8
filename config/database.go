package config

import "fmt"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Database struct {
	Driver      string `json:"driver" yaml:"driver"`
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	Database    string `json:"database" yaml:"database"`
	Charset     string `json:"charset" yaml:"charset"`
	Path        string `json:"path" yaml:"path"` // sqlite 文件路径
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
}

func (d *Database) applyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.Driver == DriverSQLite && d.Path == "" {
		d.Path = "notes.db"
	}
	if d.Driver == DriverMySQL {
		if d.Port == 0 {
			d.Port = 3306
		}
		if d.Charset == "" {
			d.Charset = "utf8mb4"
		}
	}
}

// Dsn 数据源名称. clientFoundRows 让 UPDATE 返回匹配行数而不是变更行数
func (d *Database) Dsn() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local&clientFoundRows=true",
		d.Username, d.Password, d.Host, d.Port, d.Database, d.Charset)
}
