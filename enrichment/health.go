package enrichment

import "context"

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

//encore:api public path=/health method=GET
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	return &HealthResponse{Status: "healthy", Service: "crm-enrichment"}, nil
}
