package port

// RoleAdmin marks tokens issued to back-office administrators.
const RoleAdmin = "admin"

type TokenPayload struct {
	MemberID int64
	Role     string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(payload *TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
