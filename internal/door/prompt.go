package door

func (d *Door) setPrompt(text string) {
	if d.trigger == nil {
		return
	}
	d.trigger.SetPrompt(text)
}

// showTemporaryPrompt shows temporary now and final after
// PromptDisplayDuration. A newer request cancels a pending one, so only the
// latest final text is ever applied.
func (d *Door) showTemporaryPrompt(temporary, final string) {
	if d.trigger == nil {
		return
	}
	d.pendingPrompt.Cancel()
	d.pendingPrompt = nil

	if d.Scheduler == nil {
		d.setPrompt(final)
		return
	}
	d.setPrompt(temporary)
	d.pendingPrompt = d.Scheduler.After(d.PromptDisplayDuration, func() {
		d.setPrompt(final)
		d.pendingPrompt = nil
	})
}

// PromptPending reports whether a temporary prompt is waiting to be restored.
func (d *Door) PromptPending() bool {
	return d.pendingPrompt.Pending()
}
