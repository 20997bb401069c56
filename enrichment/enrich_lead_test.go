package enrichment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"
)

func TestEnrichLead(t *testing.T) {
	s, mockIntake := newTestService(t, "")

	mockIntake.EXPECT().EnrichLead(gomock.Any(), "lead-42").Return(nil)

	resp, err := s.EnrichLead(context.Background(), &EnrichLeadRequest{LeadID: "lead-42"})

	assert.NoError(t, err)
	assert.Equal(t, "lead-42", resp.LeadID)
	assert.True(t, resp.Enriched)
}

func TestEnrichLeadPropagatesError(t *testing.T) {
	s, mockIntake := newTestService(t, "")

	mockIntake.EXPECT().
		EnrichLead(gomock.Any(), "lead-42").
		Return(&errs.Error{Code: errs.NotFound, Message: "lead not found"})

	_, err := s.EnrichLead(context.Background(), &EnrichLeadRequest{LeadID: "lead-42"})

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.NotFound, e.Code)
}

func TestEnrichLeadRequestValidation(t *testing.T) {
	err := (&EnrichLeadRequest{}).Validate()

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidArgument, e.Code)

	assert.NoError(t, (&EnrichLeadRequest{LeadID: "lead-42"}).Validate())
}
