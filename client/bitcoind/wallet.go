package bitcoind

import (
	"context"
	"encoding/json"
)

// Wallet RPCs. These require the node to have wallet support compiled in
// and a wallet loaded.

// AbandonTransaction marks the given in-wallet transaction and all its
// in-wallet descendants as abandoned, making their inputs respendable.
func (c *Client) AbandonTransaction(ctx context.Context, txID string) (json.RawMessage, error) {
	return c.Call(ctx, "abandontransaction", buildParams(arg(txID)))
}

// AbortRescan stops the current wallet rescan, if one is running.
func (c *Client) AbortRescan(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "abortrescan", nil)
}

// AddMultiSigAddress adds an nRequired-of-keys multi-signature address to
// the wallet.
func (c *Client) AddMultiSigAddress(ctx context.Context, nRequired int64, keys []string, label string) (json.RawMessage, error) {
	return c.Call(ctx, "addmultisigaddress", buildParams(
		arg(nRequired),
		arg(keys),
		opt(label, len(label) > 0),
	))
}

// BackupWallet safely copies the wallet file to the given destination.
func (c *Client) BackupWallet(ctx context.Context, destination string) (json.RawMessage, error) {
	return c.Call(ctx, "backupwallet", buildParams(arg(destination)))
}

// BumpFee bumps the fee of the given opt-in-RBF transaction, replacing it.
// options is the raw options object; leave it empty for the node's
// defaults.
func (c *Client) BumpFee(ctx context.Context, txID string, options json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "bumpfee", buildParams(arg(txID), opt(options, len(options) > 0)))
}

// CreateWallet creates and loads a new wallet.
func (c *Client) CreateWallet(ctx context.Context, walletName string, disablePrivateKeys, blank bool) (json.RawMessage, error) {
	return c.Call(ctx, "createwallet", buildParams(
		arg(walletName),
		opt(disablePrivateKeys, disablePrivateKeys),
		opt(blank, blank),
	))
}

// DumpPrivKey reveals the private key for the given address.
func (c *Client) DumpPrivKey(ctx context.Context, address string) (json.RawMessage, error) {
	return c.Call(ctx, "dumpprivkey", buildParams(arg(address)))
}

// DumpWallet dumps all wallet keys to the given file on the node, in a
// human-readable format.
func (c *Client) DumpWallet(ctx context.Context, filename string) (json.RawMessage, error) {
	return c.Call(ctx, "dumpwallet", buildParams(arg(filename)))
}

// EncryptWallet encrypts the wallet with the given passphrase. This is for
// first-time encryption; afterwards use WalletPassphrase to unlock.
func (c *Client) EncryptWallet(ctx context.Context, passphrase string) (json.RawMessage, error) {
	return c.Call(ctx, "encryptwallet", buildParams(arg(passphrase)))
}

// GetAddressesByLabel returns every address assigned the given label.
func (c *Client) GetAddressesByLabel(ctx context.Context, label string) (json.RawMessage, error) {
	return c.Call(ctx, "getaddressesbylabel", buildParams(arg(label)))
}

// GetAddressInfo returns wallet information about the given address.
func (c *Client) GetAddressInfo(ctx context.Context, address string) (json.RawMessage, error) {
	return c.Call(ctx, "getaddressinfo", buildParams(arg(address)))
}

// GetBalance returns the wallet's total available balance. dummy must be
// "*" for backwards compatibility; minConf only counts transactions with
// that many confirmations, and 0 is a real value there, distinct from
// leaving the argument to the node.
func (c *Client) GetBalance(ctx context.Context, dummy string, minConf int64, includeWatchOnly bool) (json.RawMessage, error) {
	return c.Call(ctx, "getbalance", buildParams(
		opt(dummy, dummy != "*"),
		opt(minConf, minConf != 0),
		opt(includeWatchOnly, includeWatchOnly),
	))
}

// GetBalances returns the wallet's balances broken down by category.
func (c *Client) GetBalances(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getbalances", nil)
}

// GetNewAddress returns a fresh receiving address, optionally tagged with a
// label.
func (c *Client) GetNewAddress(ctx context.Context, label string) (json.RawMessage, error) {
	return c.Call(ctx, "getnewaddress", buildParams(opt(label, len(label) > 0)))
}

// GetRawChangeAddress returns a fresh change address. addressType is
// "legacy", "p2sh-segwit" or "bech32"; empty leaves it to the node.
func (c *Client) GetRawChangeAddress(ctx context.Context, addressType string) (json.RawMessage, error) {
	return c.Call(ctx, "getrawchangeaddress", buildParams(opt(addressType, len(addressType) > 0)))
}

// GetReceivedByAddress returns the total amount received by the given
// address in transactions with at least minConf confirmations.
func (c *Client) GetReceivedByAddress(ctx context.Context, address string, minConf int64) (json.RawMessage, error) {
	return c.Call(ctx, "getreceivedbyaddress", buildParams(arg(address), opt(minConf, minConf != 1)))
}

// GetReceivedByLabel returns the total amount received by addresses with
// the given label.
func (c *Client) GetReceivedByLabel(ctx context.Context, label string, minConf int64) (json.RawMessage, error) {
	return c.Call(ctx, "getreceivedbylabel", buildParams(arg(label), opt(minConf, minConf != 1)))
}

// GetTransaction returns detailed information about the given in-wallet
// transaction.
func (c *Client) GetTransaction(ctx context.Context, txID string, includeWatchOnly bool) (json.RawMessage, error) {
	return c.Call(ctx, "gettransaction", buildParams(arg(txID), opt(includeWatchOnly, includeWatchOnly)))
}

// GetUnconfirmedBalance returns the wallet's unconfirmed balance.
func (c *Client) GetUnconfirmedBalance(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getunconfirmedbalance", nil)
}

// GetWalletInfo returns state information about the loaded wallet.
func (c *Client) GetWalletInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getwalletinfo", nil)
}

// ImportAddress adds a watch-only address to the wallet. With rescan set
// the node replays the whole chain looking for its transactions, which can
// take a long time.
func (c *Client) ImportAddress(ctx context.Context, address, label string, rescan bool) (json.RawMessage, error) {
	return c.Call(ctx, "importaddress", buildParams(
		arg(address),
		opt(label, len(label) > 0),
		opt(rescan, !rescan),
	))
}

// ImportDescriptors imports the given raw array of descriptor requests into
// a descriptor wallet.
func (c *Client) ImportDescriptors(ctx context.Context, requests json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "importdescriptors", buildParams(arg(requests)))
}

// ImportMulti imports the given raw array of import requests, optionally
// with an options object.
func (c *Client) ImportMulti(ctx context.Context, requests, options json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "importmulti", buildParams(arg(requests), opt(options, len(options) > 0)))
}

// ImportPrivKey adds a private key to the wallet.
func (c *Client) ImportPrivKey(ctx context.Context, privKey, label string, rescan bool) (json.RawMessage, error) {
	return c.Call(ctx, "importprivkey", buildParams(
		arg(privKey),
		opt(label, len(label) > 0),
		opt(rescan, !rescan),
	))
}

// ImportPrunedFunds imports funds without a rescan, using a raw transaction
// and the proof that it was included in a block. Only works on pruned
// wallets for transactions that are part of the chain.
func (c *Client) ImportPrunedFunds(ctx context.Context, rawTransaction, txOutProof string) (json.RawMessage, error) {
	return c.Call(ctx, "importprunedfunds", buildParams(arg(rawTransaction), arg(txOutProof)))
}

// ImportPubKey adds a watch-only public key to the wallet.
func (c *Client) ImportPubKey(ctx context.Context, pubKey, label string, rescan bool) (json.RawMessage, error) {
	return c.Call(ctx, "importpubkey", buildParams(
		arg(pubKey),
		opt(label, len(label) > 0),
		opt(rescan, !rescan),
	))
}

// ImportWallet imports keys from a dump file produced by DumpWallet.
func (c *Client) ImportWallet(ctx context.Context, filename string) (json.RawMessage, error) {
	return c.Call(ctx, "importwallet", buildParams(arg(filename)))
}

// KeyPoolRefill tops up the wallet's key pool.
func (c *Client) KeyPoolRefill(ctx context.Context, newSize int64) (json.RawMessage, error) {
	return c.Call(ctx, "keypoolrefill", buildParams(opt(newSize, newSize != 100)))
}

// ListAddressGroupings lists address groupings whose common ownership was
// made public by common use as inputs or as change.
func (c *Client) ListAddressGroupings(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "listaddressgroupings", nil)
}

// ListLabels lists all labels used in the wallet.
func (c *Client) ListLabels(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "listlabels", nil)
}

// ListLockUnspent lists outputs locked by LockUnspent.
func (c *Client) ListLockUnspent(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "listlockunspent", nil)
}

// ListReceivedByAddress lists received payments grouped by address.
func (c *Client) ListReceivedByAddress(ctx context.Context, minConf int64, includeEmpty, includeWatchOnly bool) (json.RawMessage, error) {
	return c.Call(ctx, "listreceivedbyaddress", buildParams(
		opt(minConf, minConf != 1),
		opt(includeEmpty, includeEmpty),
		opt(includeWatchOnly, includeWatchOnly),
	))
}

// ListReceivedByLabel lists received payments grouped by label.
func (c *Client) ListReceivedByLabel(ctx context.Context, minConf int64, includeEmpty, includeWatchOnly bool) (json.RawMessage, error) {
	return c.Call(ctx, "listreceivedbylabel", buildParams(
		opt(minConf, minConf != 1),
		opt(includeEmpty, includeEmpty),
		opt(includeWatchOnly, includeWatchOnly),
	))
}

// ListSinceBlock lists transactions since the given block, or all of them
// when blockHash is empty.
func (c *Client) ListSinceBlock(ctx context.Context, blockHash string, targetConfirmations int64, includeWatchOnly bool) (json.RawMessage, error) {
	return c.Call(ctx, "listsinceblock", buildParams(
		opt(blockHash, len(blockHash) > 0),
		opt(targetConfirmations, targetConfirmations != 1),
		opt(includeWatchOnly, includeWatchOnly),
	))
}

// ListTransactions lists the most recent wallet transactions. label "*"
// matches all; count and skip page through the history.
func (c *Client) ListTransactions(ctx context.Context, label string, count, skip int64, includeWatchOnly bool) (json.RawMessage, error) {
	return c.Call(ctx, "listtransactions", buildParams(
		opt(label, label != "*" && len(label) > 0),
		opt(count, count != 10),
		opt(skip, skip != 0),
		opt(includeWatchOnly, includeWatchOnly),
	))
}

// ListUnspent lists unspent outputs with between minConf and maxConf
// confirmations, optionally filtered to the given addresses.
func (c *Client) ListUnspent(ctx context.Context, minConf, maxConf int64, addresses []string, includeUnsafe bool) (json.RawMessage, error) {
	return c.Call(ctx, "listunspent", buildParams(
		opt(minConf, minConf != 1),
		opt(maxConf, maxConf != 9999999),
		opt(addresses, len(addresses) > 0),
		opt(includeUnsafe, !includeUnsafe),
	))
}

// ListWalletDir lists the wallets in the node's wallet directory.
func (c *Client) ListWalletDir(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "listwalletdir", nil)
}

// ListWallets lists the currently loaded wallets.
func (c *Client) ListWallets(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "listwallets", nil)
}

// LoadWallet loads a wallet from a wallet file or directory.
func (c *Client) LoadWallet(ctx context.Context, walletName string) (json.RawMessage, error) {
	return c.Call(ctx, "loadwallet", buildParams(arg(walletName)))
}

// LockUnspent locks (unlock false) or unlocks (unlock true) the outputs in
// the given raw transactions array; unlocking with an empty array unlocks
// everything.
func (c *Client) LockUnspent(ctx context.Context, unlock bool, transactions json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "lockunspent", buildParams(arg(unlock), opt(transactions, len(transactions) > 0)))
}

// PsbtBumpFee bumps the fee of the given opt-in-RBF transaction, returning
// a PSBT instead of submitting a replacement.
func (c *Client) PsbtBumpFee(ctx context.Context, txID string, options json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "psbtbumpfee", buildParams(arg(txID), opt(options, len(options) > 0)))
}

// RemovePrunedFunds deletes the given transaction from the wallet; the
// companion to ImportPrunedFunds.
func (c *Client) RemovePrunedFunds(ctx context.Context, txID string) (json.RawMessage, error) {
	return c.Call(ctx, "removeprunedfunds", buildParams(arg(txID)))
}

// RescanBlockchain rescans the local chain for wallet transactions between
// the given heights. A stopHeight below zero rescans to the tip.
func (c *Client) RescanBlockchain(ctx context.Context, startHeight, stopHeight int64) (json.RawMessage, error) {
	return c.Call(ctx, "rescanblockchain", buildParams(
		opt(startHeight, startHeight != 0),
		opt(stopHeight, stopHeight >= 0),
	))
}

// Send sends to the given raw outputs object, letting the wallet pick the
// inputs.
func (c *Client) Send(ctx context.Context, outputs json.RawMessage, confTarget int64, estimateMode string, replaceable bool) (json.RawMessage, error) {
	return c.Call(ctx, "send", buildParams(
		arg(outputs),
		opt(confTarget, confTarget != 6),
		opt(estimateMode, len(estimateMode) > 0 && estimateMode != "UNSET"),
		opt(replaceable, replaceable),
	))
}

// SendMany sends to multiple addresses at once. dummy must be "" or "*" for
// backwards compatibility; subtractFeeFrom lists the addresses the fee is
// taken from.
func (c *Client) SendMany(ctx context.Context, dummy string, amounts map[string]float64, minConf int64, comment string, subtractFeeFrom []string) (json.RawMessage, error) {
	return c.Call(ctx, "sendmany", buildParams(
		arg(dummy),
		arg(amounts),
		opt(minConf, minConf != 1),
		opt(comment, len(comment) > 0),
		opt(subtractFeeFrom, len(subtractFeeFrom) > 0),
	))
}

// SendToAddress sends the given amount to the given address.
func (c *Client) SendToAddress(ctx context.Context, address string, amount float64, comment, commentTo string, subtractFeeFromAmount bool) (json.RawMessage, error) {
	return c.Call(ctx, "sendtoaddress", buildParams(
		arg(address),
		arg(amount),
		opt(comment, len(comment) > 0),
		opt(commentTo, len(commentTo) > 0),
		opt(subtractFeeFromAmount, subtractFeeFromAmount),
	))
}

// SetHDSeed rotates the wallet's HD seed; with an empty seed the node
// generates a new one.
func (c *Client) SetHDSeed(ctx context.Context, seed string, rescan bool) (json.RawMessage, error) {
	return c.Call(ctx, "sethdseed", buildParams(
		opt(seed, len(seed) > 0),
		opt(rescan, !rescan),
	))
}

// SetLabel assigns a label to the given address.
func (c *Client) SetLabel(ctx context.Context, address, label string) (json.RawMessage, error) {
	return c.Call(ctx, "setlabel", buildParams(arg(address), arg(label)))
}

// SetTxFee sets the wallet's fixed transaction fee rate, in BTC/kvB.
func (c *Client) SetTxFee(ctx context.Context, amount float64) (json.RawMessage, error) {
	return c.Call(ctx, "settxfee", buildParams(arg(amount)))
}

// SetWalletFlag toggles the given wallet flag, e.g. "avoid_reuse".
func (c *Client) SetWalletFlag(ctx context.Context, flag string, value bool) (json.RawMessage, error) {
	return c.Call(ctx, "setwalletflag", buildParams(arg(flag), arg(value)))
}

// SignMessage signs a message with the private key of the given address.
func (c *Client) SignMessage(ctx context.Context, address, message string) (json.RawMessage, error) {
	return c.Call(ctx, "signmessage", buildParams(arg(address), arg(message)))
}

// SignRawTransactionWithWallet signs inputs of the given transaction with
// the wallet's keys.
func (c *Client) SignRawTransactionWithWallet(ctx context.Context, hexString string, prevTxs json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "signrawtransactionwithwallet", buildParams(arg(hexString), opt(prevTxs, len(prevTxs) > 0)))
}

// UnloadWallet unloads the given wallet, or the one the request is made
// against when walletName is empty.
func (c *Client) UnloadWallet(ctx context.Context, walletName string) (json.RawMessage, error) {
	return c.Call(ctx, "unloadwallet", buildParams(opt(walletName, len(walletName) > 0)))
}

// UpgradeWallet upgrades the wallet to the latest version.
func (c *Client) UpgradeWallet(ctx context.Context, walletName string) (json.RawMessage, error) {
	return c.Call(ctx, "upgradewallet", buildParams(opt(walletName, len(walletName) > 0)))
}

// WalletCreateFundedPsbt creates and funds a PSBT in one step, picking
// missing inputs from the wallet. options is the raw funding options
// object.
func (c *Client) WalletCreateFundedPsbt(ctx context.Context, inputs []TransactionInput, outputs map[string]float64, lockTime int64, options json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "walletcreatefundedpsbt", buildParams(
		arg(inputs),
		arg(outputs),
		opt(lockTime, lockTime != 0),
		opt(options, len(options) > 0),
	))
}

// WalletLock removes the wallet's decryption key from memory, locking it.
func (c *Client) WalletLock(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "walletlock", nil)
}

// WalletPassphrase unlocks the wallet for timeout seconds.
func (c *Client) WalletPassphrase(ctx context.Context, passphrase string, timeout int64) (json.RawMessage, error) {
	return c.Call(ctx, "walletpassphrase", buildParams(arg(passphrase), arg(timeout)))
}

// WalletPassphraseChange changes the wallet passphrase.
func (c *Client) WalletPassphraseChange(ctx context.Context, oldPassphrase, newPassphrase string) (json.RawMessage, error) {
	return c.Call(ctx, "walletpassphrasechange", buildParams(arg(oldPassphrase), arg(newPassphrase)))
}

// WalletProcessPsbt updates a PSBT with wallet data and, with sign set,
// signs its inputs. sigHashType defaults to "ALL" on the node.
func (c *Client) WalletProcessPsbt(ctx context.Context, psbt string, sign bool, sigHashType string, bip32Derivs bool) (json.RawMessage, error) {
	return c.Call(ctx, "walletprocesspsbt", buildParams(
		arg(psbt),
		opt(sign, !sign),
		opt(sigHashType, len(sigHashType) > 0 && sigHashType != "ALL"),
		opt(bip32Derivs, !bip32Derivs),
	))
}
