package alarms

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestNewIDWithGroup(t *testing.T) {
	is := is.New(t)

	id := NewID("plant/boilers")
	is.True(strings.HasPrefix(id, "plant/boilers/"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "plant/boilers/"))
	is.NoErr(err)
}

func TestNewIDWithoutGroup(t *testing.T) {
	is := is.New(t)

	_, err := uuid.Parse(NewID(""))
	is.NoErr(err)
}

func TestGroupFits(t *testing.T) {
	is := is.New(t)

	is.True(GroupFits(""))
	is.True(GroupFits(strings.Repeat("g", MaxIDLength-37)))
	is.True(!GroupFits(strings.Repeat("g", MaxIDLength-36)))
	is.Equal(len(NewID(strings.Repeat("g", MaxIDLength-37))), MaxIDLength)
}

func TestDerivedIDs(t *testing.T) {
	is := is.New(t)

	is.Equal(ValueID("plant/a1"), "alarmer/plant/a1")
	is.Equal(StateOID("plant/a1"), "lvar:alarmer/plant/a1")

	w, a := RuleIDs("plant/a1")
	is.Equal(w, "a1_w")
	is.Equal(a, "a1_a")

	w, a = RuleIDs("a2")
	is.Equal(w, "a2_w")
	is.Equal(a, "a2_a")
}

func TestKeyedMutexReleasesUnusedLocks(t *testing.T) {
	is := is.New(t)

	k := newKeyedMutex()

	unlock := k.Lock("a1")
	is.Equal(len(k.locks), 1)

	unlock()
	unlock()
	is.Equal(len(k.locks), 0)
}
