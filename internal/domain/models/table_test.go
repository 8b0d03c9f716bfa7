package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

func TestTable_UnmarshalYAMLKeepsOrder(t *testing.T) {
	var table models.Table
	err := yaml.Unmarshal([]byte("none: 0\nseaweed: 0.3\n3-NOP: 0.31\noils: 0.1\n"), &table)
	require.NoError(t, err)

	assert.Equal(t, []string{"none", "seaweed", "3-NOP", "oils"}, table.Keys())
	v, ok := table.Lookup("3-NOP")
	assert.True(t, ok)
	assert.Equal(t, 0.31, v)
}

func TestTable_UnmarshalYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"duplicate key": "none: 0\nnone: 0.1\n",
		"sequence":      "- none\n- seaweed\n",
		"non numeric":   "seaweed: lots\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			var table models.Table
			assert.Error(t, yaml.Unmarshal([]byte(doc), &table))
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := models.Table{{Key: "dairy", Value: 72}}

	v, ok := table.Lookup("dairy")
	assert.True(t, ok)
	assert.Equal(t, 72.0, v)

	_, ok = table.Lookup("Dairy")
	assert.False(t, ok)
}

func TestTable_Merge(t *testing.T) {
	base := models.Table{{Key: "dairy", Value: 72}, {Key: "beef", Value: 60}}
	merged := base.Merge(models.Table{{Key: "yak", Value: 40}, {Key: "dairy", Value: 68}})

	assert.Equal(t, models.Table{{Key: "dairy", Value: 68}, {Key: "beef", Value: 60}, {Key: "yak", Value: 40}}, merged)
	assert.Equal(t, 72.0, base[0].Value)
}

func TestTable_CloneIsIndependent(t *testing.T) {
	base := models.Table{{Key: "dairy", Value: 72}}
	clone := base.Clone()
	clone[0].Value = 1

	assert.Equal(t, 72.0, base[0].Value)
	assert.Nil(t, models.Table(nil).Clone())
}
