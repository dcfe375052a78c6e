package cmd

import (
	"fmt"

	"github.com/klwxsrx/profile-client/pkg/env"
	"github.com/klwxsrx/profile-client/pkg/http"
	"github.com/klwxsrx/profile-client/pkg/strings"
)

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// InitClient resolves the base url of dest from <DEST>_API_URL, defaultURL is used when it is not set.
func (f HTTPClientFactory) InitClient(dest http.Destination, defaultURL string, extraOpts ...http.ClientOption) http.Client {
	hostEnv := fmt.Sprintf("%s_API_URL", strings.ToScreamingSnakeCase(string(dest)))
	host := env.Must(env.ParseDefault[string](hostEnv, defaultURL))

	return f.impl.InitClient(dest, host, extraOpts...)
}
