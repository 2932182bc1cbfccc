package request

import "storefront-api/internal/usecase/commands"

type CustomerInfoRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,contains=@"`
}

type CheckoutRequest struct {
	CustomerInfo CustomerInfoRequest `json:"customerInfo" binding:"required"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{
		Name:  r.CustomerInfo.Name,
		Email: r.CustomerInfo.Email,
	}
}
