package cfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVisibility(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    Visibility
	}{
		{
			name:    "gate unanswered hides everything",
			answers: build("dress", "1", "health", "2"),
			want:    Visibility{},
		},
		{
			name:    "gate with unknown value hides everything",
			answers: build("terminally", "yes"),
			want:    Visibility{},
		},
		{
			name:    "terminally ill shows only BADLS",
			answers: with(build("terminally", "1"), "0", BADLSFields...),
			want:    Visibility{BADLS: true},
		},
		{
			name:    "not terminal with nothing else reveals down to self care",
			answers: build("terminally", "0"),
			want:    Visibility{BADLS: true, IADLS: true, Chronic: true, SelfCare: true, Effort: true, Sports: true},
		},
		{
			name:    "one BADLS impairment stops at BADLS",
			answers: build("terminally", "0", "dress", "1"),
			want:    Visibility{BADLS: true},
		},
		{
			name:    "one IADLS impairment stops at IADLS",
			answers: build("terminally", "0", "money", "1"),
			want:    Visibility{BADLS: true, IADLS: true},
		},
		{
			name:    "nine chronic conditions still reveal self care",
			answers: with(build("terminally", "0"), "1", ChronicFields[:9]...),
			want:    Visibility{BADLS: true, IADLS: true, Chronic: true, SelfCare: true, Effort: true, Sports: true},
		},
		{
			name:    "ten chronic conditions stop at chronic",
			answers: with(build("terminally", "0"), "1", ChronicFields[:10]...),
			want:    Visibility{BADLS: true, IADLS: true, Chronic: true},
		},
		{
			name:    "fair or poor health hides effort and sports",
			answers: build("terminally", "0", "health", "0", "effort", "1"),
			want:    Visibility{BADLS: true, IADLS: true, Chronic: true, SelfCare: true},
		},
		{
			name:    "effort all the time hides sports",
			answers: build("terminally", "0", "health", "1", "effort", "2"),
			want:    Visibility{BADLS: true, IADLS: true, Chronic: true, SelfCare: true, Effort: true},
		},
		{
			name:    "BADLS independence answers do not count as impairment",
			answers: with(build("terminally", "0"), "0", BADLSFields...),
			want:    Visibility{BADLS: true, IADLS: true, Chronic: true, SelfCare: true, Effort: true, Sports: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVisibility(tt.answers))
		})
	}
}

func TestResolveVisibility_Idempotent(t *testing.T) {
	inputs := []Answers{
		{},
		build("terminally", "1", "dress", "1"),
		build("terminally", "0", "telephone", "1"),
		with(notTerminal(), "1", ChronicFields[:12]...),
		with(notTerminal(), "2", FieldHealth, FieldEffort),
	}
	for _, in := range inputs {
		first := ResolveVisibility(in)
		second := ResolveVisibility(in)
		assert.Equal(t, first, second)
	}
}

func TestResolveVisibility_FollowsEachChange(t *testing.T) {
	a := build("terminally", "0")
	assert.True(t, ResolveVisibility(a).IADLS)

	a[FieldEat] = "1"
	assert.False(t, ResolveVisibility(a).IADLS)

	a[FieldEat] = "0"
	assert.True(t, ResolveVisibility(a).IADLS)

	a[FieldTerminally] = "1"
	assert.Equal(t, Visibility{BADLS: true}, ResolveVisibility(a))
}

func TestVisibility_VisibleGroups(t *testing.T) {
	v := ResolveVisibility(build("terminally", "0", "cooking", "1"))
	assert.Equal(t, []Group{GroupBADLS, GroupIADLS}, v.VisibleGroups())
	assert.Empty(t, Visibility{}.VisibleGroups())
}
