package server

import (
	"AppNotas/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Category *handler.Category
	Note     *handler.Note
	Public   *handler.Public
}
