package records

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Logger

type Logger interface {
	Debug(s string)
	Warn(s string)
}
