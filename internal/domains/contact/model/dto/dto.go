package dto

import (
	"github.com/google/uuid"

	"royalpalace/internal/domains/contact/model"
	"royalpalace/shared"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	gModel "royalpalace/shared/model"
	"royalpalace/shared/timezone"
)

type CreateContactMessageRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required,max=2000"`
}

func (c *CreateContactMessageRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}
}

type ContactMessageResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
	Read    bool    `json:"read"`
	gDto.Metadata
}

func (c *ContactMessageResponse) FromModel(model model.ContactMessage) {
	c.ID = model.ID
	c.Name = model.Name
	c.Email = model.Email
	c.Phone = model.Phone
	c.Subject = model.Subject
	c.Message = model.Message
	c.Read = model.Read
	c.Metadata.FromModel(model.Metadata)
}

type GetContactMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (g *GetContactMessagesResponse) FromModels(models []model.ContactMessage, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Messages = make([]ContactMessageResponse, len(models))
	for i, mod := range models {
		g.Messages[i].FromModel(mod)
	}
}
