package entity

// Session identidad autenticada + token opaco ("sesión iniciada como").
type Session struct {
	Token string
	User  User
}
