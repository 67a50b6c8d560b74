package generator

// TopicProfile drives duration, starting sentiment and the AHT benchmark for
// calls of one topic.
type TopicProfile struct {
	Complexity      int
	AvgDurationSec  float64
	SentimentStart  float64
	BenchmarkAHTMin float64
}

// Topics is the fixed topic catalogue. TopicNames keeps the iteration order
// stable so a seed always yields the same dataset.
var Topics = map[string]TopicProfile{
	"billing":      {Complexity: 2, AvgDurationSec: 240, SentimentStart: -0.3, BenchmarkAHTMin: 4.2},
	"technical":    {Complexity: 4, AvgDurationSec: 480, SentimentStart: -0.5, BenchmarkAHTMin: 8.5},
	"product_info": {Complexity: 2, AvgDurationSec: 180, SentimentStart: 0.2, BenchmarkAHTMin: 3.1},
	"complaint":    {Complexity: 3, AvgDurationSec: 420, SentimentStart: -0.6, BenchmarkAHTMin: 7.0},
	"account":      {Complexity: 2, AvgDurationSec: 210, SentimentStart: -0.1, BenchmarkAHTMin: 3.8},
	"order":        {Complexity: 3, AvgDurationSec: 270, SentimentStart: 0.1, BenchmarkAHTMin: 4.5},
}

var TopicNames = []string{"billing", "technical", "product_info", "complaint", "account", "order"}

var SalesProducts = []string{"Premium Plan", "Extended Warranty", "Add-on Service", "Upgrade Package", "Bundle Deal"}

var Teams = []string{"Sales", "Support", "Tech", "Retention"}

var subTopics = map[string][]string{
	"billing":      {"invoice", "payment", "charges"},
	"technical":    {"connectivity", "device", "software"},
	"product_info": {"features", "pricing", "availability"},
	"complaint":    {"service", "quality", "delay"},
	"account":      {"login", "settings", "profile"},
	"order":        {"status", "delivery", "cancellation"},
}

var intents = []string{"get_information", "resolve_problem", "make_complaint", "request_service"}

var intentWeights = map[string][]float64{
	"billing":      {0.3, 0.5, 0.15, 0.05},
	"technical":    {0.2, 0.7, 0.05, 0.05},
	"product_info": {0.8, 0.1, 0.05, 0.05},
	"complaint":    {0.1, 0.3, 0.6, 0.0},
	"account":      {0.4, 0.4, 0.1, 0.1},
	"order":        {0.5, 0.2, 0.1, 0.2},
}
