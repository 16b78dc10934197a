package beneficio

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// saltSelo é o salt fixo da aplicação incluído na cadeia do selo. Não é
// segredo criptográfico: serve para que o hash não seja reproduzível a partir
// só dos campos visíveis na exportação.
const saltSelo = "gestao-beneficios::selo-v1"

// tamanhoSelo é o número de caracteres hexadecimais do selo persistido.
const tamanhoSelo = 16

// SeloIntegridade calcula o hash de selamento de um período sobre a cadeia
// canônica id|valorTotal|totalFuncionarios|salt, em ordem estrita.
// Algoritmo: SHA-256, truncado a 16 hexadecimais maiúsculos. Montos sem
// separador de milhar, ponto decimal, 2 casas (ex: 40654.00).
//
// O selo é emitido uma única vez, no selamento; nunca é recalculado para o
// mesmo período depois disso.
func SeloIntegridade(periodoID string, valorTotal decimal.Decimal, totalFuncionarios int) (string, error) {
	id := strings.TrimSpace(periodoID)
	if id == "" {
		return "", fmt.Errorf("beneficio: periodoID é obrigatório para o selo")
	}
	if totalFuncionarios < 0 {
		return "", fmt.Errorf("beneficio: total de funcionários negativo")
	}

	cadeia := id + "|" +
		valorTotal.Round(2).StringFixed(2) + "|" +
		strconv.Itoa(totalFuncionarios) + "|" +
		saltSelo

	sum := sha256.Sum256([]byte(cadeia))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:tamanhoSelo], nil
}
