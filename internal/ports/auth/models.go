package auth

// Claims representa la información extraída del access token.
type Claims struct {
	UserID string
	Email  string
}

// Session es el resultado de un sign-in exitoso contra el proveedor.
type Session struct {
	AccessToken string
	UserID      string
	Email       string
}
