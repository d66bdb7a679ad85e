package modes

import "github.com/milk9111/maidmodes/mode"

// NewBasic is the system mode every maid falls back to. Wild maids keep to
// their home block; escorters follow their master.
func NewBasic() *mode.Descriptor {
	d := &mode.Descriptor{
		Name:     BasicName,
		Priority: 0,
		System:   true,
		Entries: []mode.Entry{
			{ID: Wild, Name: "Wild"},
			{ID: Escorter, Name: "Escorter"},
		},
	}
	d.New = func(in *mode.Instance) mode.Hooks {
		owner := in.Owner()
		return mode.Hooks{
			AddEntityMode: keepDefaults,
			SetMode: func(id mode.ID) bool {
				switch id {
				case Wild:
					owner.SetFreedom(true)
				case Escorter:
					owner.SetFreedom(false)
				default:
					return false
				}
				owner.SetBloodsuck(false)
				return true
			},
		}
	}
	return d
}
