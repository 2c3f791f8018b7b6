package engine

// Phase is a stage of the assembly cycle
type Phase uint8

const (
	PhaseDisassembled Phase = iota
	PhaseAssembling
	PhaseAssembled
	PhaseDisassembling
)

var phaseNames = [...]string{
	PhaseDisassembled:  "disassembled",
	PhaseAssembling:    "assembling",
	PhaseAssembled:     "assembled",
	PhaseDisassembling: "disassembling",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Next returns the successor in the strict cycle
func (p Phase) Next() Phase {
	return (p + 1) % 4
}
