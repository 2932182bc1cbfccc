//go:build unit || e2e

package builder

import (
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/usecase/commands"
)

type CheckoutBuilder struct {
	Name  string
	Email string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}
}

func (b *CheckoutBuilder) WithName(name string) *CheckoutBuilder {
	b.Name = name
	return b
}

func (b *CheckoutBuilder) WithEmail(email string) *CheckoutBuilder {
	b.Email = email
	return b
}

func (b *CheckoutBuilder) BuildCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		CustomerInfo: reqdto.CustomerInfoRequest{
			Name:  b.Name,
			Email: b.Email,
		},
	}
}
