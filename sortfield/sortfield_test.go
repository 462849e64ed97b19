package sortfield_test

import (
	"testing"

	"moviecatalog/errs"
	"moviecatalog/sortfield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type column string

const (
	columnID   column = "production_id"
	columnName column = "production"
)

func TestSet_Parse(t *testing.T) {
	set := sortfield.New(columnID, columnName).WithAlias("name", columnName)

	tests := []struct {
		name    string
		raw     string
		want    column
		wantErr bool
	}{
		{name: "column name", raw: "production_id", want: columnID},
		{name: "second column", raw: "production", want: columnName},
		{name: "alias resolves to column", raw: "name", want: columnName},
		{name: "unknown field", raw: "bogus", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
		{name: "case sensitive", raw: "PRODUCTION", wantErr: true},
		{name: "injection attempt", raw: "production; DROP TABLE production;--", wantErr: true},
		{name: "quoted column", raw: `"production"`, wantErr: true},
		{name: "trailing direction", raw: "production DESC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := set.Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, sortfield.ErrInvalidSortField, err)
				assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
				assert.Equal(t, "Invalid sort field", errs.ErrorMessage(err))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_WithAliasDoesNotMutateOriginal(t *testing.T) {
	base := sortfield.New(columnID, columnName)
	_ = base.WithAlias("name", columnName)

	_, err := base.Parse("name")

	assert.ErrorIs(t, err, sortfield.ErrInvalidSortField)
}

func TestSet_Contains(t *testing.T) {
	set := sortfield.New(columnID)

	assert.True(t, set.Contains(columnID))
	assert.False(t, set.Contains(columnName))
}

func TestSet_Tokens(t *testing.T) {
	set := sortfield.New(columnName, columnID).WithAlias("name", columnName)

	assert.Equal(t, []string{"name", "production", "production_id"}, set.Tokens())
}
