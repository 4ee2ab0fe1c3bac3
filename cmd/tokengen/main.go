package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sf-domain-reports/pkg/utils"
)

// Gera um token de webhook e o hash bcrypt correspondente.
// O token vai para a automação (n8n) e o hash para WEBHOOK_TOKEN_HASH; aspas
// simples evitam que o godotenv expanda o "$" do hash.
func main() {
	length := flag.Int("length", 40, "tamanho do token")
	flag.Parse()

	token, err := utils.GenerateToken(*length)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	hash, err := utils.HashToken(token)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar hash")
	}

	fmt.Printf("WEBHOOK_TOKEN=%s\n", token)
	fmt.Printf("WEBHOOK_TOKEN_HASH='%s'\n", hash)
}
