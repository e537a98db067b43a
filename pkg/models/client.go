package models

// Client is the customer a quote is written for.
type Client struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Company string `json:"company" db:"company"`
	Phone   string `json:"phone" db:"phone"`
	Email   string `json:"email" db:"email"`
}

func (c *Client) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   c.ID,
		ResourceType: ResourceClient,
	}
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}
