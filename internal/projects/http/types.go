package http

import (
	"time"

	"github.com/construware/construct-backend/internal/projects/domain"
)

type createProjectReq struct {
	ClientName  string     `json:"clientName"`
	ProjectName string     `json:"projectName"`
	ClientEmail string     `json:"clientEmail"`
	ClientPhone string     `json:"clientPhone"`
	StartDate   *time.Time `json:"startDate"`
}

type updateProjectReq struct {
	ClientName  *string    `json:"clientName"`
	ProjectName *string    `json:"projectName"`
	ClientEmail *string    `json:"clientEmail"`
	ClientPhone *string    `json:"clientPhone"`
	StartDate   *time.Time `json:"startDate"`
	Status      *string    `json:"status"`
}

type setBudgetReq struct {
	AreaInSqFeet *float64        `json:"areaInSqFeet"`
	WorkDetails  *workDetailsReq `json:"workDetails"`
}

type workDetailsReq struct {
	TotalAmount *float64        `json:"totalAmount"`
	Items       *[]budgetItemIn `json:"items"`
}

type budgetItemIn struct {
	CumulativeWork       string  `json:"cumulativeWork"`
	CumulativePercentage float64 `json:"cumulativePercentage"`
	Amount               float64 `json:"amount"`
}

type updateBudgetItemReq struct {
	CumulativeWork       *string  `json:"cumulativeWork"`
	CumulativePercentage *float64 `json:"cumulativePercentage"`
	Amount               *float64 `json:"amount"`
}

type addBillingReq struct {
	BillingAmount   float64    `json:"billingAmount"`
	Recipient       string     `json:"recipient"`
	Status          string     `json:"status"`
	Date            *time.Time `json:"date"`
	AdditionalNotes string     `json:"additionalNotes"`
}

type updateBillingReq struct {
	BillingAmount   *float64   `json:"billingAmount"`
	Recipient       *string    `json:"recipient"`
	Status          *string    `json:"status"`
	Date            *time.Time `json:"date"`
	AdditionalNotes *string    `json:"additionalNotes"`
}

func (r updateBillingReq) patch() domain.BillingPatch {
	p := domain.BillingPatch{
		BillingAmount:   r.BillingAmount,
		Recipient:       r.Recipient,
		Date:            r.Date,
		AdditionalNotes: r.AdditionalNotes,
	}
	if r.Status != nil {
		s := domain.BillingStatus(*r.Status)
		p.Status = &s
	}
	return p
}
