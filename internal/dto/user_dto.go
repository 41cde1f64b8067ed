package dto

// UpdateUserRequest carries a partial update; nil fields are left untouched.
// Role and email changes are admin-only.
type UpdateUserRequest struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Resume     *string `json:"resume"`
	Department *string `json:"department"`
}
