package flp

import "github.com/tallyproto/vdaf/field"

// Caller is the callback a Circuit uses to invoke a gadget instead of
// calling it directly. The engine supplies a different Caller for proving
// than for querying; see the package doc comment.
type Caller func(gadgetIndex int, args []field.Elem) (field.Elem, error)

// Circuit is a validity circuit: it declares the gadgets it uses, how many
// times each is called, the lengths of its input/output/joint-randomness
// vectors, and how to encode a measurement into field elements, truncate an
// input share into an output share, and evaluate the circuit's validity
// check.
type Circuit interface {
	// Gadgets returns the circuit's gadgets, in the order their calls
	// appear in the proof.
	Gadgets() []Gadget
	// GadgetCalls returns, for each gadget returned by Gadgets, how many
	// times the circuit calls it during one Eval.
	GadgetCalls() []int

	// Prime is the field the circuit is defined over.
	Prime() *field.Prime
	// InputLen is the length of the vector Encode produces.
	InputLen() int
	// OutputLen is the length of the vector Truncate produces.
	OutputLen() int
	// JointRandLen is the number of joint-randomness field elements Eval
	// consumes.
	JointRandLen() int

	// Encode maps a measurement to an input vector. It fails if the
	// measurement is out of the circuit's domain (the circuits package's
	// implementations wrap circuits.ErrEncode).
	Encode(measurement any) ([]field.Elem, error)
	// Truncate maps a full input (or input share) to an output (share).
	Truncate(input []field.Elem) ([]field.Elem, error)
	// Eval evaluates the circuit's validity check over input, consuming
	// jointRand as needed and dividing any share-dependent constant by
	// numShares. It must be zero, on a valid input, regardless of how many
	// shares the input has been split into. Gadget calls are routed
	// through call rather than invoked directly.
	Eval(input []field.Elem, jointRand []field.Elem, numShares int, call Caller) (field.Elem, error)
}
