package main

import (
	"fmt"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
)

var (
	sendColor    = color.New(color.FgYellow)
	minedColor   = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

func eventColor(tag orchestrator.EventTag) *color.Color {
	switch tag {
	case orchestrator.EventRejected, orchestrator.EventBadTx, orchestrator.EventFailed:
		return failureColor
	case orchestrator.EventMinedApprove, orchestrator.EventMinedWrap, orchestrator.EventMinedUnwrap, orchestrator.EventMinedTrade:
		return minedColor
	}
	return sendColor
}

func formatEvent(event orchestrator.Event) string {
	line := eventColor(event.Tag).Sprintf("%-13s", event.Tag)
	if event.HasTxHash() {
		line += " " + event.TxHash.Hex()
	}
	return line
}

func printEvent(event orchestrator.Event) {
	fmt.Println(formatEvent(event))
}

func printResult(result orchestrator.Result) error {
	if result.Handle != nil {
		fmt.Printf("%s %s\n", labelColor.Sprint("Transaction:"), result.Handle.Hash.Hex())
	}
	if result.Receipt != nil {
		fmt.Printf("%s %d (gas used %d)\n", labelColor.Sprint("Block:"), result.Receipt.BlockNumber, result.Receipt.GasUsed)
	}
	if !result.Ok() {
		return result.Err()
	}
	if result.Handle == nil {
		fmt.Println(labelColor.Sprint("Nothing to do"))
	}
	return nil
}

func printBalances(owner common.Address, native, wrapped, token, allowance *big.Int) {
	fmt.Printf("%s %s\n", labelColor.Sprint("Account:"), owner.Hex())
	rows := []struct {
		label string
		value *big.Int
	}{
		{"Native:", native},
		{"Wrapped Native:", wrapped},
		{"Token:", token},
		{"Allowance:", allowance},
	}
	for _, row := range rows {
		if row.value == nil {
			continue
		}
		fmt.Printf("%s %s\n", labelColor.Sprint(row.label), row.value.String())
	}
}
