package types

import (
	"slices"
	"strings"
)

type (
	// Descriptor holds the per member flags of an object type.
	Descriptor struct {
		// Modifier is written in front of the member name, e.g. readonly.
		Modifier string
		Optional bool
	}
	// Member is a single named entry of an object type.
	Member struct {
		Name string
		Type Type
		Descriptor
	}
	// Object is a fixed shape keyed structure. Members keep the order they were
	// declared in.
	Object struct {
		members []Member
		expr    string
	}
)

// ObjectOf creates an object type from its members. An object without any members
// allows no properties at all so it becomes a record of never.
func ObjectOf(members ...Member) Type {
	if len(members) == 0 {
		return RecordOf(Never)
	}
	parts := make([]string, len(members))
	for i, member := range members {
		parts[i] = member.String()
	}
	return &Object{
		members: slices.Clone(members),
		expr:    "{ " + strings.Join(parts, ", ") + " }",
	}
}

func (t *Object) Kind() Kind     { return KindObject }
func (t *Object) String() string { return t.expr }
func (*Object) isType()          {}

// Members returns a copy of the declared members.
func (t *Object) Members() []Member { return slices.Clone(t.members) }

// Member looks up a member by name.
func (t *Object) Member(name string) (Member, bool) {
	idx := slices.IndexFunc(t.members, func(m Member) bool { return m.Name == name })
	if idx < 0 {
		return Member{}, false
	}
	return t.members[idx], true
}

func (m Member) String() string {
	var sb strings.Builder
	if m.Modifier != "" {
		sb.WriteString(m.Modifier)
		sb.WriteByte(' ')
	}
	sb.WriteString(m.Name)
	if m.Optional {
		sb.WriteByte('?')
	}
	sb.WriteString(": ")
	sb.WriteString(m.Type.String())
	return sb.String()
}
