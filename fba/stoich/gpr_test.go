package stoich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalRule(t *testing.T, rule string, deleted ...string) bool {
	t.Helper()
	node, _, err := parseRule(rule)
	require.NoError(t, err)
	del := make(map[string]bool, len(deleted))
	for _, g := range deleted {
		del[g] = true
	}
	return node.eval(del)
}

func TestParseRule_SingleGene(t *testing.T) {
	assert.True(t, evalRule(t, "b1380"))
	assert.False(t, evalRule(t, "b1380", "b1380"))
}

func TestParseRule_OrSurvivesSingleDeletion(t *testing.T) {
	// isozymes: either gene alone keeps the reaction alive
	assert.True(t, evalRule(t, "b1854 or b1676", "b1854"))
	assert.True(t, evalRule(t, "b1854 or b1676", "b1676"))
	assert.False(t, evalRule(t, "b1854 or b1676", "b1854", "b1676"))
}

func TestParseRule_AndFailsOnAnyDeletion(t *testing.T) {
	// complex subunits: losing any gene kills the reaction
	assert.False(t, evalRule(t, "b0114 and b0115", "b0114"))
	assert.False(t, evalRule(t, "b0114 and b0115", "b0115"))
	assert.True(t, evalRule(t, "b0114 and b0115"))
}

func TestParseRule_Precedence_AndBindsTighterThanOr(t *testing.T) {
	rule := "b1 and b2 or b3"
	assert.True(t, evalRule(t, rule, "b1"), "b3 alternative should survive")
	assert.False(t, evalRule(t, rule, "b1", "b3"))
	assert.False(t, evalRule(t, rule, "b2", "b3"))
}

func TestParseRule_Parentheses(t *testing.T) {
	rule := "(b1 or b2) and b3"
	assert.True(t, evalRule(t, rule, "b1"))
	assert.False(t, evalRule(t, rule, "b3"))
	assert.False(t, evalRule(t, rule, "b1", "b2"))
}

func TestParseRule_CaseInsensitiveKeywords(t *testing.T) {
	assert.True(t, evalRule(t, "b1 OR b2", "b1"))
	assert.False(t, evalRule(t, "b1 AND b2", "b1"))
}

func TestParseRule_ReportsGenes(t *testing.T) {
	_, genes, err := parseRule("(b2 or b1) and b3")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2", "b3"}, genes)
}

func TestParseRule_Malformed(t *testing.T) {
	for _, rule := range []string{"", "and", "b1 or", "(b1 and b2", "b1 b2", ") b1"} {
		_, _, err := parseRule(rule)
		assert.Error(t, err, "rule %q should not parse", rule)
	}
}
