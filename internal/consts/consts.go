package consts

const (
	SwitchK1  = 1.0    // closed-state switch coefficient
	SwitchK2  = 0.6569 // open-state switch coefficient
	SwitchYsw = 0.2929 // switch conductance per rated ampere over rated volt
)
