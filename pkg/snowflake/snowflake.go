package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenRequestID 请求链路ID
func GenRequestID() string {
	return node.Generate().String()
}
