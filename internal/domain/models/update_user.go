package model

type UpdateUserDTO struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	Image    *string `json:"image,omitempty"`
}

func (u *UpdateUserDTO) IsEmpty() bool {
	return u == nil || (u.Email == nil && u.Name == nil && u.Password == nil && u.Image == nil)
}
