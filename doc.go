// Package stockfolio provides the accounting and performance-analytics
// engine of a stock investment tracker. It turns a chronological ledger of
// buy and sell transactions into exact current holdings with FIFO cost
// basis, realized gains with strict lot matching, a closed/partial/open
// trade history, and a bundle of money-weighted and time-weighted
// performance metrics (CAGR, IRR, Modified-Dietz volatility, Sharpe,
// concentration, beta, capital efficiency).
//
// The core functionalities include:
//   - Ledger Management: Recording buy and sell transactions in an
//     immutable, chronological record (JSONL on disk, CSV import/export).
//   - Market Data: Live prices, month-end historical prices, and betas,
//     supplied as already-resolved values; the engine never performs I/O.
//   - Accounting System: A stateless engine that replays the ledger on
//     every call to produce holdings, trade history, monthly valuations,
//     and the metrics bundle. There is no incremental state to invalidate.
//
// This package serves as the foundational logic for the `sfo` command-line
// tool, ensuring that all reports derive from a single FIFO matching pass.
package stockfolio
