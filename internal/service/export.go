package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	"tasting-contest-backend/internal/repository"

	"github.com/google/uuid"
)

// ExportRow is one line of the results export: a subject of a collection
// together with one statement made on it. Subjects without any statement
// appear once with an empty scope.
type ExportRow struct {
	CollectionID   uuid.UUID        `json:"collection_id"`
	CollectionName string           `json:"collection_name"`
	Theme          string           `json:"theme"`
	SubjectID      uuid.UUID        `json:"subject_id"`
	SubjectName    string           `json:"subject_name"`
	Producer       string           `json:"producer"`
	Vintage        string           `json:"vintage"`
	ScopeType      models.ScopeType `json:"scope_type,omitempty"`
	ScopeID        *uuid.UUID       `json:"scope_id,omitempty"`
	ScopeName      string           `json:"scope_name,omitempty"`
	Flag           bool             `json:"flag"`
	Requested      bool             `json:"requested"`
	Statement      string           `json:"statement"`
	ExtraA         string           `json:"extra_a"`
	ExtraB         string           `json:"extra_b"`
	ExtraC         string           `json:"extra_c"`
	ExtraD         string           `json:"extra_d"`
	ExtraE         string           `json:"extra_e"`
}

// ExportResponse holds the export of a contest
type ExportResponse struct {
	ContestID uuid.UUID   `json:"contest_id"`
	Rows      []ExportRow `json:"rows"`
}

var exportHeader = []string{
	"collection_id", "collection_name", "theme",
	"subject_id", "subject_name", "producer", "vintage",
	"scope_type", "scope_id", "scope_name",
	"flag", "requested", "statement",
	"extra_a", "extra_b", "extra_c", "extra_d", "extra_e",
}

// ExportResults lists every subject of the contest with its live statements
func (s *ReportService) ExportResults(ctx context.Context, actor, contestID uuid.UUID) (*ExportResponse, error) {
	resp := &ExportResponse{ContestID: contestID, Rows: []ExportRow{}}
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		chain, err := ResolveChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionResultsExport, chain.Contest.ID, nil); err != nil {
			return err
		}

		collections, err := tx.Collections().ListByContest(contestID)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		molds, err := tx.Impressions().ListMolds(collectionIDs(collections))
		if err != nil {
			return fmt.Errorf("failed to list subjects: %w", err)
		}
		statements, err := tx.Statements().ListByContest(contestID, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to list statements: %w", err)
		}
		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}

		scopeNames := map[uuid.UUID]string{chain.Contest.ID: chain.Contest.Name}
		for _, d := range divisions {
			scopeNames[d.ID] = d.Name
		}
		bySubject := make(map[uuid.UUID][]models.Statement)
		for _, st := range statements {
			bySubject[st.SubjectID] = append(bySubject[st.SubjectID], st)
		}
		moldsByCollection := make(map[uuid.UUID][]models.Impression)
		for _, m := range molds {
			moldsByCollection[*m.CollectionID] = append(moldsByCollection[*m.CollectionID], m)
		}

		for _, c := range collections {
			for _, m := range moldsByCollection[c.ID] {
				base := ExportRow{
					CollectionID:   c.ID,
					CollectionName: c.Name,
					Theme:          c.Theme,
					SubjectID:      m.ID,
					SubjectName:    m.Name,
					Producer:       m.Producer,
					Vintage:        m.Vintage,
				}
				subjectStatements := bySubject[m.ID]
				if len(subjectStatements) == 0 {
					resp.Rows = append(resp.Rows, base)
					continue
				}
				for _, st := range subjectStatements {
					row := base
					scopeID := st.ScopeID
					row.ScopeType = st.ScopeType
					row.ScopeID = &scopeID
					row.ScopeName = scopeNames[st.ScopeID]
					row.Flag = st.Flag
					row.Requested = st.Requested
					row.Statement = deref(st.Statement)
					row.ExtraA = deref(st.ExtraA)
					row.ExtraB = deref(st.ExtraB)
					row.ExtraC = deref(st.ExtraC)
					row.ExtraD = deref(st.ExtraD)
					row.ExtraE = deref(st.ExtraE)
					resp.Rows = append(resp.Rows, row)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// WriteCSV writes export rows as CSV with a header line
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		scopeID := ""
		if r.ScopeID != nil {
			scopeID = r.ScopeID.String()
		}
		record := []string{
			r.CollectionID.String(), r.CollectionName, r.Theme,
			r.SubjectID.String(), r.SubjectName, r.Producer, r.Vintage,
			string(r.ScopeType), scopeID, r.ScopeName,
			strconv.FormatBool(r.Flag), strconv.FormatBool(r.Requested), r.Statement,
			r.ExtraA, r.ExtraB, r.ExtraC, r.ExtraD, r.ExtraE,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
