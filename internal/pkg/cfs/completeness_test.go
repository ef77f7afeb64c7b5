package cfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name        string
		answers     Answers
		want        bool
		wantMissing []Field
	}{
		{
			name:        "empty answers",
			answers:     Answers{},
			want:        false,
			wantMissing: []Field{FieldTerminally},
		},
		{
			name:    "terminally ill is complete on its own",
			answers: build("terminally", "1"),
			want:    true,
		},
		{
			name:        "missing BADLS field",
			answers:     build("terminally", "0", "dress", "0", "eat", "0", "walk", "0", "bed", "0"),
			want:        false,
			wantMissing: append([]Field{FieldBath}, append(append([]Field{}, IADLSFields...), ChronicFields...)...),
		},
		{
			name:    "BADLS impairment only needs BADLS answered",
			answers: with(build("terminally", "0", "dress", "1"), "0", FieldEat, FieldWalk, FieldBed, FieldBath),
			want:    true,
		},
		{
			name:        "BADLS impairment with unanswered BADLS",
			answers:     build("terminally", "0", "dress", "1"),
			want:        false,
			wantMissing: []Field{FieldEat, FieldWalk, FieldBed, FieldBath},
		},
		{
			name:    "IADLS impairment stops before chronic",
			answers: with(with(build("terminally", "0"), "0", BADLSFields...), "1", IADLSFields...),
			want:    true,
		},
		{
			name:    "all groups answered without self care",
			answers: notTerminal(),
			want:    true,
		},
		{
			name:        "one chronic field missing",
			answers:     removeField(notTerminal(), FieldKidneyDisease),
			want:        false,
			wantMissing: []Field{FieldKidneyDisease},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComplete(tt.answers))
			assert.Equal(t, tt.wantMissing, MissingFields(tt.answers))
		})
	}
}

func TestMissingSelfCare(t *testing.T) {
	assert.Equal(t, []Field{FieldHealth, FieldEffort, FieldSports}, MissingSelfCare(notTerminal()))
	assert.Empty(t, MissingSelfCare(with(notTerminal(), "0", FieldHealth)))
	assert.Empty(t, MissingSelfCare(with(with(notTerminal(), "1", FieldHealth), "2", FieldEffort)))
	assert.Equal(t, []Field{FieldSports}, MissingSelfCare(with(with(notTerminal(), "1", FieldHealth), "0", FieldEffort)))
	assert.Empty(t, MissingSelfCare(build("terminally", "1")))
}

func removeField(a Answers, f Field) Answers {
	out := a.Clone()
	delete(out, f)
	return out
}
