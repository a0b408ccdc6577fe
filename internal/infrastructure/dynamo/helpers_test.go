package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-api-selfservice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"phone_number": "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", ue.Expr)
	assert.Equal(t, map[string]string{"#f0": "phone_number"}, ue.Names)
	s, ok := ue.Values[":v0"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "555-0100", s.Value)
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	updates := map[string]interface{}{
		"updated_at":    "2026-01-01T00:00:00Z",
		"password_hash": "h",
		"phone_number":  "555-0100",
	}
	ue1, err := buildUpdateExpr(updates)
	require.NoError(t, err)
	ue2, err := buildUpdateExpr(updates)
	require.NoError(t, err)

	assert.Equal(t, ue1.Expr, ue2.Expr)
	assert.Equal(t, "password_hash", ue1.Names["#f0"])
	assert.Equal(t, "phone_number", ue1.Names["#f1"])
	assert.Equal(t, "updated_at", ue1.Names["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", ue1.Expr)
}

func TestBuildUpdateExpr_ValuesMarshalledCorrectly(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"enable": true})
	require.NoError(t, err)
	boolVal, isBool := ue.Values[":v0"].(*types.AttributeValueMemberBOOL)
	require.True(t, isBool)
	assert.True(t, boolVal.Value)
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, err := buildUpdateExpr(map[string]interface{}{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestTableInputs_KeysAndNames(t *testing.T) {
	inputs := tableInputs(config.DynamoTables{Users: "people", Sessions: "logins"})

	require.Len(t, inputs, 2)
	assert.Equal(t, "people", *inputs[0].TableName)
	assert.Equal(t, attrUserID, *inputs[0].KeySchema[0].AttributeName)
	assert.Equal(t, "logins", *inputs[1].TableName)
	assert.Equal(t, attrSessionID, *inputs[1].KeySchema[0].AttributeName)
	assert.Equal(t, "user_id-index", *inputs[1].GlobalSecondaryIndexes[0].IndexName)
}
