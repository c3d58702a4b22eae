package sdk

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-transaction execution environment the chain hands to the
// contract: identities, block coordinates and the attached intents.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       string
	Intents     []Intent
}
