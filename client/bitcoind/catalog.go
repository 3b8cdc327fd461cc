package bitcoind

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/genyleap/bitcoin-rpc/jsonrpc"
)

// ParamKind is the JSON shape a positional parameter must take on the
// wire.
type ParamKind int

const (
	ParamString ParamKind = iota
	ParamInt
	ParamFloat
	ParamBool
	// ParamArray and ParamObject take verbatim JSON text.
	ParamArray
	ParamObject
)

func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamInt:
		return "int"
	case ParamFloat:
		return "float"
	case ParamBool:
		return "bool"
	case ParamArray:
		return "array"
	case ParamObject:
		return "object"
	default:
		return "unknown"
	}
}

// ParamSpec describes one positional parameter of an RPC method.
type ParamSpec struct {
	Name     string
	Kind     ParamKind
	Required bool
}

// Operation describes one RPC method: its wire name and its positional
// parameters, required ones first.
type Operation struct {
	Method string
	Params []ParamSpec
}

func req(name string, kind ParamKind) ParamSpec {
	return ParamSpec{Name: name, Kind: kind, Required: true}
}

func optional(name string, kind ParamKind) ParamSpec {
	return ParamSpec{Name: name, Kind: kind}
}

// Catalog lists every method the client knows about, keyed by wire name.
// It drives generic invocation: callers that take method names and string
// arguments use it to coerce the arguments to the right JSON shapes.
var Catalog = map[string]Operation{
	// Blockchain
	"getbestblockhash":      {Method: "getbestblockhash"},
	"getblock":              {Method: "getblock", Params: []ParamSpec{req("blockhash", ParamString), optional("verbosity", ParamInt)}},
	"getblockchaininfo":     {Method: "getblockchaininfo"},
	"getblockcount":         {Method: "getblockcount"},
	"getblockfilter":        {Method: "getblockfilter", Params: []ParamSpec{req("blockhash", ParamString), optional("filtertype", ParamString)}},
	"getblockhash":          {Method: "getblockhash", Params: []ParamSpec{req("height", ParamInt)}},
	"getblockheader":        {Method: "getblockheader", Params: []ParamSpec{req("blockhash", ParamString), optional("verbose", ParamBool)}},
	"getblockstats":         {Method: "getblockstats", Params: []ParamSpec{req("hash_or_height", ParamString), optional("stats", ParamArray)}},
	"getchaintips":          {Method: "getchaintips"},
	"getchaintxstats":       {Method: "getchaintxstats", Params: []ParamSpec{optional("nblocks", ParamInt), optional("blockhash", ParamString)}},
	"getdifficulty":         {Method: "getdifficulty"},
	"getmempoolancestors":   {Method: "getmempoolancestors", Params: []ParamSpec{req("txid", ParamString), optional("verbose", ParamBool)}},
	"getmempooldescendants": {Method: "getmempooldescendants", Params: []ParamSpec{req("txid", ParamString), optional("verbose", ParamBool)}},
	"getmempoolentry":       {Method: "getmempoolentry", Params: []ParamSpec{req("txid", ParamString)}},
	"getmempoolinfo":        {Method: "getmempoolinfo"},
	"getrawmempool":         {Method: "getrawmempool", Params: []ParamSpec{optional("verbose", ParamBool)}},
	"gettxout":              {Method: "gettxout", Params: []ParamSpec{req("txid", ParamString), req("n", ParamInt), optional("include_mempool", ParamBool)}},
	"gettxoutproof":         {Method: "gettxoutproof", Params: []ParamSpec{req("txids", ParamArray), optional("blockhash", ParamString)}},
	"gettxoutsetinfo":       {Method: "gettxoutsetinfo"},
	"preciousblock":         {Method: "preciousblock", Params: []ParamSpec{req("blockhash", ParamString)}},
	"pruneblockchain":       {Method: "pruneblockchain", Params: []ParamSpec{req("height", ParamInt)}},
	"savemempool":           {Method: "savemempool"},
	"scantxoutset":          {Method: "scantxoutset", Params: []ParamSpec{req("action", ParamString), optional("scanobjects", ParamArray)}},
	"verifychain":           {Method: "verifychain", Params: []ParamSpec{optional("checklevel", ParamInt), optional("nblocks", ParamInt)}},
	"verifytxoutproof":      {Method: "verifytxoutproof", Params: []ParamSpec{req("proof", ParamString)}},

	// Control
	"getmemoryinfo": {Method: "getmemoryinfo", Params: []ParamSpec{optional("mode", ParamString)}},
	"getrpcinfo":    {Method: "getrpcinfo"},
	"help":          {Method: "help", Params: []ParamSpec{optional("command", ParamString)}},
	"logging":       {Method: "logging", Params: []ParamSpec{optional("include", ParamArray), optional("exclude", ParamArray)}},
	"stop":          {Method: "stop"},
	"uptime":        {Method: "uptime"},

	// Generating
	"generateblock":        {Method: "generateblock", Params: []ParamSpec{req("output", ParamString), req("transactions", ParamArray)}},
	"generatetoaddress":    {Method: "generatetoaddress", Params: []ParamSpec{req("nblocks", ParamInt), req("address", ParamString), optional("maxtries", ParamInt)}},
	"generatetodescriptor": {Method: "generatetodescriptor", Params: []ParamSpec{req("num_blocks", ParamInt), req("descriptor", ParamString), optional("maxtries", ParamInt)}},

	// Mining
	"getblocktemplate":      {Method: "getblocktemplate", Params: []ParamSpec{optional("template_request", ParamObject)}},
	"getmininginfo":         {Method: "getmininginfo"},
	"getnetworkhashps":      {Method: "getnetworkhashps", Params: []ParamSpec{optional("nblocks", ParamInt), optional("height", ParamInt)}},
	"prioritisetransaction": {Method: "prioritisetransaction", Params: []ParamSpec{req("txid", ParamString), req("fee_delta", ParamFloat)}},
	"submitblock":           {Method: "submitblock", Params: []ParamSpec{req("hexdata", ParamString), optional("dummy", ParamString)}},
	"submitheader":          {Method: "submitheader", Params: []ParamSpec{req("hexdata", ParamString)}},

	// Network
	"addnode":          {Method: "addnode", Params: []ParamSpec{req("node", ParamString), req("command", ParamString)}},
	"clearbanned":      {Method: "clearbanned"},
	"disconnectnode":   {Method: "disconnectnode", Params: []ParamSpec{req("address", ParamString)}},
	"getaddednodeinfo": {Method: "getaddednodeinfo", Params: []ParamSpec{optional("node", ParamString)}},
	"getconnectioncount": {
		Method: "getconnectioncount",
	},
	"getnettotals":     {Method: "getnettotals"},
	"getnetworkinfo":   {Method: "getnetworkinfo"},
	"getnodeaddresses": {Method: "getnodeaddresses", Params: []ParamSpec{optional("count", ParamInt)}},
	"getpeerinfo":      {Method: "getpeerinfo"},
	"listbanned":       {Method: "listbanned"},
	"ping":             {Method: "ping"},
	"setban":           {Method: "setban", Params: []ParamSpec{req("subnet", ParamString), req("command", ParamString), optional("bantime", ParamInt), optional("absolute", ParamBool)}},
	"setnetworkactive": {Method: "setnetworkactive", Params: []ParamSpec{req("state", ParamBool)}},

	// Rawtransactions
	"analyzepsbt":               {Method: "analyzepsbt", Params: []ParamSpec{req("psbt", ParamString)}},
	"combinepsbt":               {Method: "combinepsbt", Params: []ParamSpec{req("txs", ParamArray)}},
	"combinerawtransaction":     {Method: "combinerawtransaction", Params: []ParamSpec{req("txs", ParamArray)}},
	"converttopsbt":             {Method: "converttopsbt", Params: []ParamSpec{req("hexstring", ParamString), optional("permitsigdata", ParamBool), optional("iswitness", ParamBool)}},
	"createpsbt":                {Method: "createpsbt", Params: []ParamSpec{req("inputs", ParamArray), req("outputs", ParamObject)}},
	"createrawtransaction":      {Method: "createrawtransaction", Params: []ParamSpec{req("inputs", ParamArray), req("outputs", ParamObject)}},
	"decodepsbt":                {Method: "decodepsbt", Params: []ParamSpec{req("psbt", ParamString)}},
	"decoderawtransaction":      {Method: "decoderawtransaction", Params: []ParamSpec{req("hexstring", ParamString), optional("iswitness", ParamBool)}},
	"decodescript":              {Method: "decodescript", Params: []ParamSpec{req("hexstring", ParamString)}},
	"finalizepsbt":              {Method: "finalizepsbt", Params: []ParamSpec{req("psbt", ParamString), optional("extract", ParamBool)}},
	"fundrawtransaction":        {Method: "fundrawtransaction", Params: []ParamSpec{req("hexstring", ParamString), optional("options", ParamObject)}},
	"getrawtransaction":         {Method: "getrawtransaction", Params: []ParamSpec{req("txid", ParamString), optional("verbose", ParamBool)}},
	"joinpsbts":                 {Method: "joinpsbts", Params: []ParamSpec{req("txs", ParamArray)}},
	"sendrawtransaction":        {Method: "sendrawtransaction", Params: []ParamSpec{req("hexstring", ParamString), optional("allowhighfees", ParamBool)}},
	"signrawtransactionwithkey": {Method: "signrawtransactionwithkey", Params: []ParamSpec{req("hexstring", ParamString), req("privkeys", ParamArray), optional("prevtxs", ParamArray)}},
	"testmempoolaccept":         {Method: "testmempoolaccept", Params: []ParamSpec{req("rawtxs", ParamArray), optional("allowhighfees", ParamBool)}},
	"utxoupdatepsbt":            {Method: "utxoupdatepsbt", Params: []ParamSpec{req("psbt", ParamString), optional("descriptors", ParamArray)}},

	// Util
	"createmultisig":         {Method: "createmultisig", Params: []ParamSpec{req("nrequired", ParamInt), req("keys", ParamArray)}},
	"deriveaddresses":        {Method: "deriveaddresses", Params: []ParamSpec{req("descriptor", ParamString), optional("range", ParamArray)}},
	"estimatesmartfee":       {Method: "estimatesmartfee", Params: []ParamSpec{req("conf_target", ParamInt), optional("estimate_mode", ParamString)}},
	"getdescriptorinfo":      {Method: "getdescriptorinfo", Params: []ParamSpec{req("descriptor", ParamString)}},
	"getindexinfo":           {Method: "getindexinfo"},
	"signmessagewithprivkey": {Method: "signmessagewithprivkey", Params: []ParamSpec{req("privkey", ParamString), req("message", ParamString)}},
	"validateaddress":        {Method: "validateaddress", Params: []ParamSpec{req("address", ParamString)}},
	"verifymessage":          {Method: "verifymessage", Params: []ParamSpec{req("address", ParamString), req("signature", ParamString), req("message", ParamString)}},

	// Wallet
	"abandontransaction":           {Method: "abandontransaction", Params: []ParamSpec{req("txid", ParamString)}},
	"abortrescan":                  {Method: "abortrescan"},
	"addmultisigaddress":           {Method: "addmultisigaddress", Params: []ParamSpec{req("nrequired", ParamInt), req("keys", ParamArray), optional("label", ParamString)}},
	"backupwallet":                 {Method: "backupwallet", Params: []ParamSpec{req("destination", ParamString)}},
	"bumpfee":                      {Method: "bumpfee", Params: []ParamSpec{req("txid", ParamString), optional("options", ParamObject)}},
	"createwallet":                 {Method: "createwallet", Params: []ParamSpec{req("wallet_name", ParamString), optional("disable_private_keys", ParamBool), optional("blank", ParamBool)}},
	"dumpprivkey":                  {Method: "dumpprivkey", Params: []ParamSpec{req("address", ParamString)}},
	"dumpwallet":                   {Method: "dumpwallet", Params: []ParamSpec{req("filename", ParamString)}},
	"encryptwallet":                {Method: "encryptwallet", Params: []ParamSpec{req("passphrase", ParamString)}},
	"getaddressesbylabel":          {Method: "getaddressesbylabel", Params: []ParamSpec{req("label", ParamString)}},
	"getaddressinfo":               {Method: "getaddressinfo", Params: []ParamSpec{req("address", ParamString)}},
	"getbalance":                   {Method: "getbalance", Params: []ParamSpec{optional("dummy", ParamString), optional("minconf", ParamInt), optional("include_watchonly", ParamBool)}},
	"getbalances":                  {Method: "getbalances"},
	"getnewaddress":                {Method: "getnewaddress", Params: []ParamSpec{optional("label", ParamString)}},
	"getrawchangeaddress":          {Method: "getrawchangeaddress", Params: []ParamSpec{optional("address_type", ParamString)}},
	"getreceivedbyaddress":         {Method: "getreceivedbyaddress", Params: []ParamSpec{req("address", ParamString), optional("minconf", ParamInt)}},
	"getreceivedbylabel":           {Method: "getreceivedbylabel", Params: []ParamSpec{req("label", ParamString), optional("minconf", ParamInt)}},
	"gettransaction":               {Method: "gettransaction", Params: []ParamSpec{req("txid", ParamString), optional("include_watchonly", ParamBool)}},
	"getunconfirmedbalance":        {Method: "getunconfirmedbalance"},
	"getwalletinfo":                {Method: "getwalletinfo"},
	"importaddress":                {Method: "importaddress", Params: []ParamSpec{req("address", ParamString), optional("label", ParamString), optional("rescan", ParamBool)}},
	"importdescriptors":            {Method: "importdescriptors", Params: []ParamSpec{req("requests", ParamArray)}},
	"importmulti":                  {Method: "importmulti", Params: []ParamSpec{req("requests", ParamArray), optional("options", ParamObject)}},
	"importprivkey":                {Method: "importprivkey", Params: []ParamSpec{req("privkey", ParamString), optional("label", ParamString), optional("rescan", ParamBool)}},
	"importprunedfunds":            {Method: "importprunedfunds", Params: []ParamSpec{req("rawtransaction", ParamString), req("txoutproof", ParamString)}},
	"importpubkey":                 {Method: "importpubkey", Params: []ParamSpec{req("pubkey", ParamString), optional("label", ParamString), optional("rescan", ParamBool)}},
	"importwallet":                 {Method: "importwallet", Params: []ParamSpec{req("filename", ParamString)}},
	"keypoolrefill":                {Method: "keypoolrefill", Params: []ParamSpec{optional("newsize", ParamInt)}},
	"listaddressgroupings":         {Method: "listaddressgroupings"},
	"listlabels":                   {Method: "listlabels"},
	"listlockunspent":              {Method: "listlockunspent"},
	"listreceivedbyaddress":        {Method: "listreceivedbyaddress", Params: []ParamSpec{optional("minconf", ParamInt), optional("include_empty", ParamBool), optional("include_watchonly", ParamBool)}},
	"listreceivedbylabel":          {Method: "listreceivedbylabel", Params: []ParamSpec{optional("minconf", ParamInt), optional("include_empty", ParamBool), optional("include_watchonly", ParamBool)}},
	"listsinceblock":               {Method: "listsinceblock", Params: []ParamSpec{optional("blockhash", ParamString), optional("target_confirmations", ParamInt), optional("include_watchonly", ParamBool)}},
	"listtransactions":             {Method: "listtransactions", Params: []ParamSpec{optional("label", ParamString), optional("count", ParamInt), optional("skip", ParamInt), optional("include_watchonly", ParamBool)}},
	"listunspent":                  {Method: "listunspent", Params: []ParamSpec{optional("minconf", ParamInt), optional("maxconf", ParamInt), optional("addresses", ParamArray), optional("include_unsafe", ParamBool)}},
	"listwalletdir":                {Method: "listwalletdir"},
	"listwallets":                  {Method: "listwallets"},
	"loadwallet":                   {Method: "loadwallet", Params: []ParamSpec{req("filename", ParamString)}},
	"lockunspent":                  {Method: "lockunspent", Params: []ParamSpec{req("unlock", ParamBool), optional("transactions", ParamArray)}},
	"psbtbumpfee":                  {Method: "psbtbumpfee", Params: []ParamSpec{req("txid", ParamString), optional("options", ParamObject)}},
	"removeprunedfunds":            {Method: "removeprunedfunds", Params: []ParamSpec{req("txid", ParamString)}},
	"rescanblockchain":             {Method: "rescanblockchain", Params: []ParamSpec{optional("start_height", ParamInt), optional("stop_height", ParamInt)}},
	"send":                         {Method: "send", Params: []ParamSpec{req("outputs", ParamArray), optional("conf_target", ParamInt), optional("estimate_mode", ParamString), optional("replaceable", ParamBool)}},
	"sendmany":                     {Method: "sendmany", Params: []ParamSpec{req("dummy", ParamString), req("amounts", ParamObject), optional("minconf", ParamInt), optional("comment", ParamString), optional("subtractfeefrom", ParamArray)}},
	"sendtoaddress":                {Method: "sendtoaddress", Params: []ParamSpec{req("address", ParamString), req("amount", ParamFloat), optional("comment", ParamString), optional("comment_to", ParamString), optional("subtractfeefromamount", ParamBool)}},
	"sethdseed":                    {Method: "sethdseed", Params: []ParamSpec{optional("seed", ParamString), optional("rescan", ParamBool)}},
	"setlabel":                     {Method: "setlabel", Params: []ParamSpec{req("address", ParamString), req("label", ParamString)}},
	"settxfee":                     {Method: "settxfee", Params: []ParamSpec{req("amount", ParamFloat)}},
	"setwalletflag":                {Method: "setwalletflag", Params: []ParamSpec{req("flag", ParamString), req("value", ParamBool)}},
	"signmessage":                  {Method: "signmessage", Params: []ParamSpec{req("address", ParamString), req("message", ParamString)}},
	"signrawtransactionwithwallet": {Method: "signrawtransactionwithwallet", Params: []ParamSpec{req("hexstring", ParamString), optional("prevtxs", ParamArray)}},
	"unloadwallet":                 {Method: "unloadwallet", Params: []ParamSpec{optional("wallet_name", ParamString)}},
	"upgradewallet":                {Method: "upgradewallet", Params: []ParamSpec{optional("wallet_name", ParamString)}},
	"walletcreatefundedpsbt":       {Method: "walletcreatefundedpsbt", Params: []ParamSpec{req("inputs", ParamArray), req("outputs", ParamObject), optional("locktime", ParamInt), optional("options", ParamObject)}},
	"walletlock":                   {Method: "walletlock"},
	"walletpassphrase":             {Method: "walletpassphrase", Params: []ParamSpec{req("passphrase", ParamString), req("timeout", ParamInt)}},
	"walletpassphrasechange":       {Method: "walletpassphrasechange", Params: []ParamSpec{req("oldpassphrase", ParamString), req("newpassphrase", ParamString)}},
	"walletprocesspsbt":            {Method: "walletprocesspsbt", Params: []ParamSpec{req("psbt", ParamString), optional("sign", ParamBool), optional("sighashtype", ParamString), optional("bip32derivs", ParamBool)}},
}

// LookupOperation returns the catalog entry for the given method name.
func LookupOperation(method string) (Operation, bool) {
	op, ok := Catalog[method]
	return op, ok
}

// CoerceArgs turns string arguments into the positional parameters the
// operation expects, in order. Required parameters must all be present;
// optional ones can be left off from the tail.
func (op Operation) CoerceArgs(args []string) (jsonrpc.Params, error) {
	required := 0
	for _, p := range op.Params {
		if p.Required {
			required++
		}
	}
	if len(args) < required {
		return nil, fmt.Errorf("%s requires at least %d argument(s), got %d", op.Method, required, len(args))
	}
	if len(args) > len(op.Params) {
		return nil, fmt.Errorf("%s takes at most %d argument(s), got %d", op.Method, len(op.Params), len(args))
	}

	params := make(jsonrpc.Params, 0, len(args))
	for i, raw := range args {
		spec := op.Params[i]
		value, err := spec.coerce(raw)
		if err != nil {
			return nil, fmt.Errorf("argument %q of %s: %w", spec.Name, op.Method, err)
		}
		params = append(params, value)
	}
	return params, nil
}

func (p ParamSpec) coerce(raw string) (interface{}, error) {
	switch p.Kind {
	case ParamString:
		return raw, nil
	case ParamInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse %q as an integer", raw)
		}
		return v, nil
	case ParamFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse %q as a number", raw)
		}
		return v, nil
	case ParamBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse %q as a boolean", raw)
		}
		return v, nil
	case ParamArray, ParamObject:
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("couldn't parse %q as JSON", raw)
		}
		return json.RawMessage(raw), nil
	default:
		return nil, fmt.Errorf("unsupported parameter kind %d", p.Kind)
	}
}
