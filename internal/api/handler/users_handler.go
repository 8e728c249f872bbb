package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-directory/internal/core/domain"
	"github.com/99minutos/user-directory/internal/core/store"
	"github.com/99minutos/user-directory/internal/view"
)

const pageTitle = "Users"

// UsersHandler serves the rendered user list and the selected store state.
type UsersHandler struct {
	container *view.Container
	store     *store.Store
}

func NewUsersHandler(container *view.Container, st *store.Store) *UsersHandler {
	return &UsersHandler{container: container, store: st}
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

// Page handles GET / — renders the container inside the index layout.
func (h *UsersHandler) Page(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.container.Render(&buf); err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", view.Page{
		Title:   pageTitle,
		Content: template.HTML(buf.String()),
	})
}

// List handles GET /api/users — returns the users held by the store.
//
// @Summary      List the users currently held by the store
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Router       /api/users [get]
func (h *UsersHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, usersResponse{Users: h.store.State().Users})
}
