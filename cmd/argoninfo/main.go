// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/argon/core"
)

func main() {
	_ = godotenv.Load()

	report, err := core.NewCapabilityReport(core.ValidationFromEnv())
	if err != nil {
		log.Fatal(err)
	}

	bytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", bytes)
}
