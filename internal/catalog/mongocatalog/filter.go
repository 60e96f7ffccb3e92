package mongocatalog

import (
	"regexp"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// filterDocument translates criteria into a mongo query filter.
func filterDocument(c catalog.Criteria) bson.M {
	filter := bson.M{}

	idClause := bson.M{}
	if ids, ok := c.RestrictedIDs(); ok {
		idClause["$in"] = ids
	}
	if excluded := c.ExcludedIDs(); len(excluded) > 0 {
		idClause["$nin"] = excluded
	}
	if len(idClause) > 0 {
		filter["_id"] = idClause
	}

	if rank, ok := c.RankBound(); ok {
		filter["rank"] = bson.M{"$lt": rank}
	}

	f := c.Filter()
	if len(f.Genders) > 0 {
		filter["gender"] = bson.M{"$in": exactFold(f.Genders)}
	}
	if len(f.Categories) > 0 {
		filter["categories"] = bson.M{"$in": exactFold(f.Categories)}
	}
	if len(f.Colors) > 0 {
		filter["colors"] = bson.M{"$in": substringFold(f.Colors)}
	}
	if f.Search != "" {
		filter["$text"] = bson.M{"$search": f.Search}
	}
	return filter
}

func exactFold(values []string) []primitive.Regex {
	out := make([]primitive.Regex, 0, len(values))
	for _, v := range values {
		out = append(out, primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"})
	}
	return out
}

func substringFold(values []string) []primitive.Regex {
	out := make([]primitive.Regex, 0, len(values))
	for _, v := range values {
		out = append(out, primitive.Regex{Pattern: regexp.QuoteMeta(v), Options: "i"})
	}
	return out
}
