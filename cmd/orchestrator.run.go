package cmd

import "os"

// run executes the cook pipeline: validate, connect, gate on the remote Chef
// version, resolve node context, install cookbook dependencies, mirror the
// kitchen, upload the run configuration and invoke chef-solo. The run report
// records every phase reached, including the one that failed.
func (o *orchestrator) run() error {
	defer o.close()

	for _, w := range o.opts.applyLegacyToggles() {
		printWarning("%s", w)
	}
	if err := o.tgt.validate(); err != nil {
		return err
	}
	if err := o.opts.validate(); err != nil {
		return err
	}
	if err := o.ws.validate(); err != nil {
		return err
	}

	nodeName := resolveNodeName(o.opts, o.tgt)
	o.report.Name = nodeName

	if err := o.phase("connect", o.connect); err != nil {
		return err
	}
	if o.transfer == nil {
		o.transfer = newTransferFunc(o.tgt, o.opts, o.runner)
	}
	normalizePerms := clientIsWindows()

	err := o.phase("check chef version", func() (phaseOutcome, error) {
		if o.opts.skipChefCheck {
			return phaseOutcome{status: phaseSkipped, detail: "disabled"}, nil
		}
		return phaseOutcome{}, checkChefVersion(o.client, o.tgt, o.opts.minChefVersion, o.opts.cmdTimeout)
	})
	if err != nil {
		return err
	}

	var nc *nodeConfig
	err = o.phase("resolve node config", func() (phaseOutcome, error) {
		resolved, err := resolveNodeConfig(o.ws, o.opts, nodeName)
		if err != nil {
			return phaseOutcome{}, err
		}
		nc = resolved
		if nc.generated {
			return phaseOutcome{detail: "generated " + nc.path}, nil
		}
		return phaseOutcome{detail: nc.path}, nil
	})
	if err != nil {
		return err
	}

	err = o.phase("install dependencies", func() (phaseOutcome, error) {
		res, err := installDependencies(o.ws, o.opts, o.runner, os.Stderr, os.Stderr)
		if err != nil {
			return phaseOutcome{}, err
		}
		switch res.status {
		case depSkipped:
			return phaseOutcome{status: phaseSkipped, detail: res.detail}, nil
		case depUnavailable, depFailed:
			printWarning("%s", res.detail)
			return phaseOutcome{status: phaseWarning, detail: res.detail}, nil
		}
		return phaseOutcome{detail: res.detail}, nil
	})
	if err != nil {
		return err
	}

	err = o.phase("sync kitchen", func() (phaseOutcome, error) {
		if err := ensureProvisionDir(o.client, o.opts, o.opts.cmdTimeout); err != nil {
			return phaseOutcome{}, err
		}
		sync := newSynchronizer(o.transfer, chefignoreFile{path: o.ws.chefignorePath()}, normalizePerms)
		return phaseOutcome{}, sync.sync(buildSyncUnits(o.ws, o.opts))
	})
	if err != nil {
		return err
	}

	err = o.phase("upload run config", func() (phaseOutcome, error) {
		if err := o.transfer.mirror(fileUnit("dna.json", nc.path, o.opts.remotePath("dna.json")), nil, normalizePerms); err != nil {
			return phaseOutcome{}, err
		}
		body, err := renderSoloRb(o.ws, o.opts, nodeName)
		if err != nil {
			return phaseOutcome{}, err
		}
		return phaseOutcome{}, uploadRendered(o.transfer, "solo.rb", body, o.opts.remotePath("solo.rb"), normalizePerms)
	})
	if err != nil {
		return err
	}

	err = o.phase("cook", func() (phaseOutcome, error) {
		if o.opts.syncOnly {
			return phaseOutcome{status: phaseSkipped, detail: "--sync-only"}, nil
		}
		return phaseOutcome{}, runChefSolo(o.client, o.tgt, buildCookCommand(o.opts), o.opts.cmdTimeout)
	})
	if err != nil {
		return err
	}

	if o.opts.syncOnly {
		printSuccess("kitchen synced to %s", o.tgt.String())
	} else {
		printSuccess("cooked %s as node %s", o.tgt.String(), nodeName)
	}
	return nil
}
