package contracts

import "shrm-web/internal/pkg/dto/responses"

type PageContent interface {
	Page(name string) (*responses.Page, error)
}
