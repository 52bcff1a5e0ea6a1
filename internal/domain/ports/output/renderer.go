package ports

//go:generate mockery --name ContentRenderer --dir . --output ../../../../mocks/post --outpkg mocks --filename ContentRenderer.go
type ContentRenderer interface {
	RenderHTML(content string) (string, error)
}
