package ports

//go:generate mockery --name PasswordHasher --dir . --output ../../../../mocks/auth --outpkg mocks --filename PasswordHasher.go
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}
