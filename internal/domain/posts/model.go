package posts

import "time"

// Post es un mensaje del tablero comunitario. UserEmail es la etiqueta del
// autor capturada al publicar; un cambio de email posterior no re-etiqueta
// posts viejos. Los posts no se editan nunca.
type Post struct {
	ID        int64
	CreatedAt time.Time
	UserID    string
	UserEmail string
	Title     string
	Content   string
}
