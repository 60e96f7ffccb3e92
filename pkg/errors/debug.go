package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorDump flattens an error chain for the request.error log line.
type ErrorDump struct {
	TopMessage string   `json:"top_message"`
	Code       Code     `json:"code,omitempty"`
	Chain      []string `json:"chain,omitempty"`
	// Store names the backend a driver error came from: postgres or mongo.
	Store string `json:"store,omitempty"`

	PGCode       string `json:"pg_code,omitempty"`
	PGConstraint string `json:"pg_constraint,omitempty"`
	PGTable      string `json:"pg_table,omitempty"`
	PGDetail     string `json:"pg_detail,omitempty"`
	PGMessage    string `json:"pg_message,omitempty"`

	MongoCode   int32    `json:"mongo_code,omitempty"`
	MongoLabels []string `json:"mongo_labels,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}
	d := ErrorDump{TopMessage: err.Error()}
	if te := As(err); te != nil {
		d.Code = te.code
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var (
		pgxErr *pgconn.PgError
		pqErr  *pq.Error
		cmdErr mongo.CommandError
	)
	switch {
	case errors.As(err, &pgxErr):
		d.Store = "postgres"
		d.PGCode, d.PGConstraint, d.PGTable = pgxErr.Code, pgxErr.ConstraintName, pgxErr.TableName
		d.PGDetail, d.PGMessage = pgxErr.Detail, pgxErr.Message
	case errors.As(err, &pqErr):
		d.Store = "postgres"
		d.PGCode, d.PGConstraint, d.PGTable = string(pqErr.Code), pqErr.Constraint, pqErr.Table
		d.PGDetail, d.PGMessage = pqErr.Detail, pqErr.Message
	case errors.As(err, &cmdErr):
		d.Store = "mongo"
		d.MongoCode, d.MongoLabels = cmdErr.Code, cmdErr.Labels
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		d.Store = "mongo"
	}
	return d
}

// Fields renders the dump as log fields, omitting empty driver details.
func (d ErrorDump) Fields() map[string]any {
	fields := map[string]any{
		"error":       d.TopMessage,
		"error_code":  d.Code,
		"error_chain": d.Chain,
	}
	if d.Store != "" {
		fields["store"] = d.Store
	}
	if d.PGCode != "" {
		fields["pg_code"] = d.PGCode
		fields["pg_detail"] = d.PGDetail
		fields["pg_message"] = d.PGMessage
		fields["pg_table"] = d.PGTable
		fields["pg_constraint"] = d.PGConstraint
	}
	if d.MongoCode != 0 || len(d.MongoLabels) > 0 {
		fields["mongo_code"] = d.MongoCode
		fields["mongo_labels"] = d.MongoLabels
	}
	return fields
}
