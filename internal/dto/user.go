package dto

import "github.com/shopward/shopward_backend/internal/core/domain"

// CreateUserRequest carries the fields required to create a user. It doubles
// as the signup body. Field presence is validated in the handler so each
// missing field yields its own message.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Name     string `json:"name"`
}

// EditUserRequest carries a partial profile update keyed by username.
// Empty fields are left untouched.
type EditUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Name     string `json:"name"`
}

// ChangeUserStatusRequest carries a status change keyed by username.
type ChangeUserStatusRequest struct {
	Username   string `json:"username"`
	UserStatus string `json:"userStatus"`
}

// UserSearchModel holds the field-level contains matches for user search.
type UserSearchModel struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// SearchUsersRequest is the filter body accepted by the user search endpoint.
type SearchUsersRequest struct {
	Model    UserSearchModel `json:"model"`
	SortItem SortItem        `json:"sortItem"`
	Paging   Paging          `json:"paging"`
}

// ToDomain converts the search body into the typed filter specification.
func (r SearchUsersRequest) ToDomain() domain.UserFilter {
	return domain.UserFilter{
		Username: r.Model.Username,
		Name:     r.Model.Name,
		Email:    r.Model.Email,
		Address:  r.Model.Address,
		Sort:     r.SortItem.toDomain(),
		Paging:   r.Paging.toDomain(),
	}
}

// UserInfo is the public-safe projection of a user. It never carries the
// password or the refresh token.
type UserInfo struct {
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Status   domain.UserStatus `json:"userStatus"`
}

// ToUserInfo projects a domain user onto the public-safe shape.
func ToUserInfo(u *domain.User) UserInfo {
	return UserInfo{
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Address:  u.Address,
		Status:   u.Status,
	}
}

// ToUserInfoList projects a slice of domain users.
func ToUserInfoList(users []domain.User) []UserInfo {
	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = ToUserInfo(&users[i])
	}
	return infos
}
