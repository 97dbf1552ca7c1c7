package entities

// Actor аутентифицированный инициатор запроса, приходит из слоя авторизации.
type Actor struct {
	ID   int64
	Role RoleType
}

type RoleType string

const (
	RoleUser    RoleType = "user"
	RoleCourier RoleType = "courier"
	RoleAdmin   RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess владелец записи либо админ.
func (a Actor) CanAccess(ownerID int64) bool {
	return a.ID == ownerID || a.IsAdmin()
}
