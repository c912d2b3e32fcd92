package utils

import (
	"encoding/json"
	"time"

	"github.com/aferraro/badge-scanner/gen/ent"
	contactspb "github.com/aferraro/badge-scanner/gen/proto/contacts/v1"
	"github.com/aferraro/badge-scanner/internal/badge"
	"github.com/aferraro/badge-scanner/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToContact(e *ent.Contact) *entity.Contact {
	return &entity.Contact{
		ID:        e.ID,
		Name:      e.Name,
		Company:   e.Company,
		Title:     e.Title,
		Email:     e.Email,
		Phone:     e.Phone,
		Notes:     e.Notes,
		Tags:      e.Tags,
		Source:    e.Source,
		GroupID:   e.GroupID,
		HubSpotID: e.HubspotID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToGroup(e *ent.Group) *entity.Group {
	return &entity.Group{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToScanJob(e *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:             e.ID,
		ContactID:      e.ContactID,
		Status:         e.Status,
		StartedAt:      e.StartedAt,
		FinishedAt:     e.FinishedAt,
		ErrorMessage:   e.ErrorMessage,
		RawText:        e.RawText,
		Candidates:     e.Candidates,
		Selection:      e.Selection,
		NameConfidence: e.NameConfidence,
		NeedsReview:    e.NeedsReview,
	}
}

func ToPBContact(c *entity.Contact) *contactspb.Contact {
	pb := &contactspb.Contact{
		Id:        c.ID.String(),
		Name:      c.Name,
		Company:   strOrEmpty(c.Company),
		Title:     strOrEmpty(c.Title),
		Email:     strOrEmpty(c.Email),
		Phone:     strOrEmpty(c.Phone),
		Notes:     strOrEmpty(c.Notes),
		Tags:      c.Tags,
		Source:    c.Source,
		HubspotId: strOrEmpty(c.HubSpotID),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if c.GroupID != nil {
		pb.GroupId = c.GroupID.String()
	}
	return pb
}

func ToPBGroup(g *entity.Group) *contactspb.Group {
	return &contactspb.Group{
		Id:          g.ID.String(),
		Name:        g.Name,
		Description: strOrEmpty(g.Description),
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBScanJob(j *entity.ScanJob) *contactspb.ScanJob {
	pb := &contactspb.ScanJob{
		Id:           j.ID.String(),
		Status:       j.Status,
		RawText:      strOrEmpty(j.RawText),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		NeedsReview:  j.NeedsReview,
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.ContactID != nil {
		pb.ContactId = j.ContactID.String()
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if j.NameConfidence != nil {
		pb.NameConfidence = *j.NameConfidence
	}
	if len(j.Candidates) > 0 {
		var cs badge.CandidateSet
		if err := json.Unmarshal(j.Candidates, &cs); err == nil {
			pb.Candidates = ToPBCandidateSet(&cs)
		}
	}
	if len(j.Selection) > 0 {
		var sel badge.Selection
		if err := json.Unmarshal(j.Selection, &sel); err == nil {
			pb.Selection = make(map[string]string, len(sel))
			for cat, cand := range sel {
				pb.Selection[string(cat)] = cand.Line.Text
			}
		}
	}
	return pb
}

func ToPBLine(l badge.Line) *contactspb.Line {
	return &contactspb.Line{
		Text:         l.Text,
		OrdinalIndex: int32(l.OrdinalIndex),
	}
}

func ToPBCandidateSet(cs *badge.CandidateSet) *contactspb.CandidateSet {
	pb := &contactspb.CandidateSet{
		Relevant: make([]*contactspb.Line, 0, len(cs.Relevant)),
		Filtered: make([]*contactspb.Line, 0, len(cs.Filtered)),
	}
	for _, l := range cs.Relevant {
		pb.Relevant = append(pb.Relevant, ToPBLine(l))
	}
	for _, l := range cs.Filtered {
		pb.Filtered = append(pb.Filtered, ToPBLine(l))
	}
	for _, cat := range cs.Categories() {
		for _, cand := range cs.Candidates(cat) {
			pb.Candidates = append(pb.Candidates, &contactspb.Candidate{
				Line:       ToPBLine(cand.Line),
				Category:   string(cand.Category),
				Confidence: cand.Confidence,
			})
		}
	}
	return pb
}
