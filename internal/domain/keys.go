package domain

type CtxKey string

const (
	KeyUserID   CtxKey = "UserID"
	KeyUsername CtxKey = "Username"
	KeyUserRole CtxKey = "Role"
)
