package constant

// Section letters of the vector self-check suite.
const (
	VectorConstructors = "A"
	VectorCapacity     = "B"
	VectorModifiers    = "C"
	VectorElements     = "D"
	VectorMemory       = "E"
	VectorOperators    = "F"
	VectorIterators    = "G"
	VectorFriends      = "H"
	VectorNonMembers   = "I"
)

// Section letters of the stack self-check suite.
const (
	StackConstructors = "A"
	StackCapacity     = "B"
	StackModifiers    = "C"
	StackElements     = "D"
	StackOperators    = "E"
	StackFriends      = "F"
	StackNonMembers   = "G"
)
