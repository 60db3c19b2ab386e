package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCell_Neighbors(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		cell        Cell
		want        []int64
	}{
		{
			"Should return all three links when set",
			Cell{LeftNode: 1, ForwardNode: 2, RightNode: 3},
			[]int64{1, 2, 3},
		},
		{
			"Should skip absent links",
			Cell{LeftNode: NoLink, ForwardNode: 2, RightNode: NoLink},
			[]int64{2},
		},
		{
			"Should return nothing for a dead end",
			Cell{LeftNode: NoLink, ForwardNode: NoLink, RightNode: NoLink},
			[]int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req.Equal(tt.want, tt.cell.Neighbors())
		})
	}
}
