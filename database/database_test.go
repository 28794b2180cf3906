package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilterMatchesTextFields(t *testing.T) {
	filter := buildSearchFilter("math")

	clauses, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 3)

	pattern := primitive.Regex{Pattern: "math", Options: "i"}
	assert.Equal(t, bson.M{"subject": pattern}, clauses[0])
	assert.Equal(t, bson.M{"location": pattern}, clauses[1])
	assert.Equal(t, bson.M{"icon": pattern}, clauses[2])
}

func TestBuildSearchFilterAddsNumericClauses(t *testing.T) {
	filter := buildSearchFilter("100")

	clauses := filter["$or"].([]bson.M)
	require.Len(t, clauses, 5)
	assert.Equal(t, bson.M{"price": float64(100)}, clauses[3])
	assert.Equal(t, bson.M{"spaces": float64(100)}, clauses[4])

	// a numeric term still matches text fields as a substring
	assert.Equal(t, bson.M{"subject": primitive.Regex{Pattern: "100", Options: "i"}}, clauses[0])
}

func TestBuildSearchFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := buildSearchFilter("c++ (advanced)")

	clauses := filter["$or"].([]bson.M)
	require.Len(t, clauses, 3)

	pattern, ok := clauses[0]["subject"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `c\+\+ \(advanced\)`, pattern.Pattern)
	assert.Equal(t, "i", pattern.Options)
}
