package eventdecode

// discriminators are the 8-byte prefixes identifying each Steward event
// variant inside base64-decoded log data. Three of these (ScoreComponents,
// InstantUnstakeComponents, DecreaseComponents) are historically prone to
// tag-pattern collisions across renamed structs upstream; all nine are
// wired into DecodeLogLine's dispatch table regardless, so none of these
// documented variants is rejected for its discriminator. Lines carrying any
// other discriminator yield no event.
var (
	discRebalance                = [8]byte{120, 27, 117, 235, 104, 42, 132, 75}
	discStateTransition          = [8]byte{55, 181, 26, 193, 207, 79, 92, 138}
	discDirectedRebalance        = [8]byte{14, 204, 88, 161, 45, 233, 19, 202}
	discAutoAddValidator         = [8]byte{77, 22, 143, 56, 198, 9, 241, 83}
	discAutoRemoveValidator      = [8]byte{163, 91, 12, 207, 50, 114, 6, 179}
	discEpochMaintenance         = [8]byte{31, 166, 205, 94, 128, 71, 18, 244}
	discDecreaseComponents       = [8]byte{200, 53, 9, 176, 67, 144, 23, 61}
	discScoreComponents          = [8]byte{96, 214, 37, 5, 182, 63, 101, 29}
	discInstantUnstakeComponents = [8]byte{18, 229, 80, 103, 147, 6, 172, 94}
)
