package apache

// Fields of the machine-readable mod_status output mapped to the metric
// names submitted for them.  "Total kBytes" is converted to bytes before
// submission.
var gauges = map[string]string{
	"IdleWorkers":         "apache.performance.idle_workers",
	"BusyWorkers":         "apache.performance.busy_workers",
	"CPULoad":             "apache.performance.cpu_load",
	"Uptime":              "apache.performance.uptime",
	"Total kBytes":        "apache.net.bytes",
	"Total Accesses":      "apache.net.hits",
	"ConnsTotal":          "apache.conns_total",
	"ConnsAsyncWriting":   "apache.conns_async_writing",
	"ConnsAsyncKeepAlive": "apache.conns_async_keep_alive",
	"ConnsAsyncClosing":   "apache.conns_async_closing",
}

var rates = map[string]string{
	"Total kBytes":   "apache.net.bytes_per_s",
	"Total Accesses": "apache.net.request_per_s",
}

// Whole-field values that are multiplied by 1024 before submission
var kilobyteFields = map[string]bool{
	"Total kBytes": true,
}

// Worker slot states from the mod_status scoreboard legend
var scoreboardStates = map[byte]string{
	'_': "apache.scoreboard.waiting",
	'S': "apache.scoreboard.starting",
	'R': "apache.scoreboard.reading",
	'W': "apache.scoreboard.sending",
	'K': "apache.scoreboard.keepalive",
	'D': "apache.scoreboard.dnslookup",
	'C': "apache.scoreboard.closing",
	'L': "apache.scoreboard.logging",
	'G': "apache.scoreboard.finishing",
	'I': "apache.scoreboard.idle_cleanup",
	'.': "apache.scoreboard.open",
}

const serviceCheckName = "apache.can_connect"
