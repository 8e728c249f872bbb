package view

import (
	"io"

	"github.com/99minutos/user-directory/internal/core/domain"
)

// RenderUserList writes users as a table, one row per user in input order.
func RenderUserList(w io.Writer, users []domain.User) error {
	return templates.ExecuteTemplate(w, "user_list", users)
}

func renderPlaceholder(w io.Writer) error {
	return templates.ExecuteTemplate(w, "placeholder", nil)
}
