package models

// Endereco is the address payload returned by the postal-code lookup.
type Endereco struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
}

// Estado is an administrative region (state) from the IBGE catalog.
type Estado struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// Municipio is a municipality within a state.
type Municipio struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
