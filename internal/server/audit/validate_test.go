package audit

import (
	"math/rand"
	"testing"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/stretchr/testify/assert"
)

var novaSeq = []string{"Flowcell ID", "Sample ID", "Lane", "Index"}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		required   []string
		header     []string
		wantStatus string
		wantErrs   []string
	}{
		{
			name:       "missing first column",
			required:   novaSeq,
			header:     []string{"Sample ID", "Lane", "Index"},
			wantStatus: common.RunStatusFail,
			wantErrs:   []string{"Missing columns: Flowcell ID"},
		},
		{
			name:       "extra column passes",
			required:   novaSeq,
			header:     []string{"Flowcell ID", "Sample ID", "Lane", "Index", "Extra"},
			wantStatus: common.RunStatusPass,
			wantErrs:   []string{},
		},
		{
			name:       "empty header lists every required column",
			required:   novaSeq,
			header:     []string{},
			wantStatus: common.RunStatusFail,
			wantErrs:   []string{"Missing columns: Flowcell ID, Sample ID, Lane, Index"},
		},
		{
			name:       "no requirements always pass",
			required:   []string{},
			header:     []string{},
			wantStatus: common.RunStatusPass,
			wantErrs:   []string{},
		},
		{
			name:       "nil requirements pass",
			required:   nil,
			header:     []string{"anything"},
			wantStatus: common.RunStatusPass,
			wantErrs:   []string{},
		},
		{
			name:       "case sensitive",
			required:   []string{"Lane"},
			header:     []string{"lane"},
			wantStatus: common.RunStatusFail,
			wantErrs:   []string{"Missing columns: Lane"},
		},
		{
			name:       "no trimming",
			required:   []string{"Lane"},
			header:     []string{" Lane"},
			wantStatus: common.RunStatusFail,
			wantErrs:   []string{"Missing columns: Lane"},
		},
		{
			name:       "missing keeps template order",
			required:   []string{"C", "A", "B"},
			header:     []string{"B"},
			wantStatus: common.RunStatusFail,
			wantErrs:   []string{"Missing columns: C, A"},
		},
		{
			name:       "duplicate requirements reported twice",
			required:   []string{"A", "A"},
			header:     []string{"B"},
			wantStatus: common.RunStatusFail,
			wantErrs:   []string{"Missing columns: A, A"},
		},
		{
			name:       "duplicate header names do not matter",
			required:   []string{"A"},
			header:     []string{"A", "A"},
			wantStatus: common.RunStatusPass,
			wantErrs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, errs := Validate(tt.required, tt.header)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantErrs, errs)
		})
	}
}

func TestValidate_Reflexive(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		cols := randomColumns(r)
		status, errs := Validate(cols, cols)
		assert.Equal(t, common.RunStatusPass, status, "columns %v", cols)
		assert.Empty(t, errs)
	}
}

func TestValidate_HeaderOrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		required := randomColumns(r)
		header := randomColumns(r)

		shuffled := append([]string(nil), header...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		s1, e1 := Validate(required, header)
		s2, e2 := Validate(required, shuffled)
		assert.Equal(t, s1, s2)
		assert.Equal(t, e1, e2)
	}
}

func randomColumns(r *rand.Rand) []string {
	pool := []string{"Flowcell ID", "Sample ID", "Lane", "Index", "GemCode", "Barcode", "Sample Name"}
	n := r.Intn(len(pool) + 1)
	out := make([]string, n)
	for i := range out {
		out[i] = pool[r.Intn(len(pool))]
	}
	return out
}
