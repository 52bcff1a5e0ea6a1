package model

type PostFilters struct {
	Published *bool
}

type ContentFormat string

const (
	ContentFormatRaw  ContentFormat = ""
	ContentFormatHTML ContentFormat = "html"
)
