package server

import (
	"NoteManager/handler"
)

type Handlers struct {
	Home   *handler.Home
	Note   *handler.Note
	Health *handler.Health
}
