package ixdecode

// DecodeByProgramID dispatches ci to the decoder matching programID, or
// returns nil if programID is none of the four known programs, or if the
// matched decoder itself rejects the instruction's tag.
func DecodeByProgramID(programID string, ci CompiledInstruction, table AccountTable) Instruction {
	switch programID {
	case StakePoolProgramID:
		return DecodeStakePool(ci, table)
	case JitoVaultProgramID:
		return DecodeVault(ci, table)
	case Token2022ProgramID:
		return DecodeToken2022(ci, table)
	case JitoStewardProgramID:
		return DecodeSteward(ci, table)
	default:
		return nil
	}
}
