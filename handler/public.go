package handler

import (
	"AppNotas/pkg/context"
	"AppNotas/pkg/response"
	"AppNotas/service"

	"github.com/gin-gonic/gin"
)

// Public 无需登录即可访问的公开笔记
type Public struct {
	NoteService service.INoteService
}

func (p *Public) RegisterRouter(r gin.IRouter) {
	r.GET("/public/notes/:id", context.Wrap(p.GetNote))
}

func (p *Public) GetNote(c *gin.Context) error {
	id, err := pathID(c, service.MsgNoteNotFound)
	if err != nil {
		return err
	}

	note, err := p.NoteService.GetPublic(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}
